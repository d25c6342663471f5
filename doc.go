// Package tempmail provides a client for a disposable-email provider
// exposing a mail.tm-style REST API.
//
// The client provisions throwaway addresses and reads their inboxes.
// Provisioned address metadata is persisted separately via the store
// subpackage; this package never touches disk.
//
// Basic usage:
//
//	client, err := tempmail.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	addr, err := client.ProvisionAddress(ctx, "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	msgs, err := client.ListMessages(ctx, addr.Address, addr.Password)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, m := range msgs {
//	    fmt.Println(m.Subject)
//	}
package tempmail
