// Package email implements outbound mail delivery and address verification.
package email

import (
	"context"
	"net"
	"strings"

	domainerrors "fintrack/internal/domain/errors"
	"fintrack/internal/domain/service"
)

// mxVerifier checks that an address' domain publishes MX records before an
// account is created for it. A DNS failure counts as a rejection: the
// lookup either proves deliverability or the registration stops.
type mxVerifier struct {
	resolver *net.Resolver
}

// NewMXVerifier is the constructor for mxVerifier.
func NewMXVerifier() service.EmailDomainVerifier {
	return &mxVerifier{resolver: net.DefaultResolver}
}

// VerifyDomain resolves MX records for the domain part of the address.
func (v *mxVerifier) VerifyDomain(ctx context.Context, email string) error {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return domainerrors.ErrEmailDomainInvalid
	}
	domain := email[at+1:]

	records, err := v.resolver.LookupMX(ctx, domain)
	if err != nil || len(records) == 0 {
		return domainerrors.ErrEmailDomainInvalid
	}

	return nil
}
