// Package api implements the request pipeline shared by every Bento endpoint.
// It handles authentication, URL construction, rate-limit retries with
// exponential backoff, and classification of HTTP answers.
//
// # Request Pipeline
//
// Endpoints describe a call as a [PreparedRequest]. [Client.Execute] turns it
// into an absolute URL with [BuildURL], attaches the headers below and sends it:
//
//   - Authorization: Basic base64(publishable_key:secret_key)
//   - Accept and Content-Type: application/json
//   - User-Agent: bento-go-<version>-<site_uuid>
//
// # Retry Behavior
//
// Only 429 Too Many Requests is retried. A call makes at most 3 attempts,
// waiting 100ms and then 200ms between them. Network errors are returned
// immediately. Configure the policy with [WithRetryConfig].
//
// # Outcomes
//
// [Outcome] reports the final answer. [Outcome.Err] maps it onto the errors
// in the apierrors package:
//
//	outcome, err := client.Execute(ctx, req)
//	if err != nil {
//	    // transport failure
//	}
//	if err := outcome.Err(); err != nil {
//	    // rate limited, unauthorized or rejected
//	}
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
