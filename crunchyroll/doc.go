// Package crunchyroll provides a typed client for the Crunchyroll catalog API.
//
// Every call goes through an Executor, which holds the HTTP client and the
// session state (locale, region bucket, premium entitlement, signing
// parameters). Responses are decoded into typed results which are then
// hydrated: the executor is handed down the decoded object graph so that any
// nested object can make its own authenticated follow-up call.
//
// # Usage
//
//	client, err := crunchyroll.New(ctx,
//		crunchyroll.WithAccessToken(token),
//		crunchyroll.WithLocale(crunchyroll.LocaleDeDE),
//		crunchyroll.WithLogger(logger),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	results, err := client.Query(ctx, "darling", crunchyroll.QueryOptions{Limit: 10})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, c := range results.All() {
//		if c.Type == crunchyroll.MediaTypeSeries {
//			series, err := c.Series(ctx)
//			...
//		}
//	}
//
// # Decode modes
//
// By default unknown response fields are ignored and missing ones keep their
// zero value. Building with -tags crunchy_strict rejects unknown fields, which
// is meant for checking the declared schemas against the live service.
//
// # Errors
//
//   - RequestError: the request never produced a response
//   - DecodeError: non-success status, schema mismatch or unknown search result type
//   - ClassificationError: ParseURL found no matching pattern
//
// Nothing is retried.
package crunchyroll
