// Package bento provides a Go client SDK for the Bento marketing automation API.
//
// The SDK covers subscribers, tags, custom fields, broadcasts, events,
// subscriber commands, statistics, transactional email batches and the
// experimental lookup endpoints. Inputs are validated locally before any
// request is sent, and rate-limited requests are retried with backoff.
//
// Basic usage:
//
//	cfg, err := bento.NewConfigBuilder().
//	    PublishableKey("your-publishable-key").
//	    SecretKey("your-secret-key").
//	    SiteUUID("your-site-uuid").
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client, err := bento.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	_, err = client.TrackEvents(ctx, []bento.Event{{
//	    Type:  "$completed_onboarding",
//	    Email: "user@example.com",
//	}})
//
// Batch endpoints return a *PartialFailureError when the API rejects some
// items. It matches both ErrPartialFailure and ErrUnexpectedResponse:
//
//	if errors.Is(err, bento.ErrPartialFailure) {
//	    var pf *bento.PartialFailureError
//	    errors.As(err, &pf)
//	    log.Printf("%d of %d rejected", pf.Failed, pf.Failed+pf.Succeeded)
//	}
//
// Configuration can also be read from the environment or a YAML file with
// [LoadConfig].
package bento
