// Package rcu provides the public types and contracts for the Royal
// Commission for AlUla (RCU) services API client.
//
// The package defines the Client interface, the Config used to build one,
// the resource records returned by the API (heritage sites, visitor
// permits, visitor registrations, event bookings), and the error types the
// client surfaces. Construct clients with the rcuclient package:
//
//	client, err := rcuclient.New(&rcu.Config{
//		APIEndpoint: "https://api.rcu.gov.sa",
//		APIKey:      os.Getenv("RCU_API_KEY"),
//		SecretKey:   os.Getenv("RCU_SECRET_KEY"),
//		ClientID:    os.Getenv("RCU_CLIENT_ID"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := client.Authenticate(ctx); err != nil {
//		log.Fatal(err)
//	}
//
//	sites, err := client.HeritageSites().List(ctx, nil)
//
// All operations that reach the network take a context.Context and return
// an explicit error. Calls that require authentication fail with
// ErrNotAuthenticated before any request is sent if Authenticate has not
// succeeded.
package rcu
