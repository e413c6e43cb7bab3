package service

import "context"

// EmailDomainVerifier checks whether an email address' domain can receive
// mail. Resolution failure and a domain with no mail exchangers are treated
// identically: the address is rejected.
type EmailDomainVerifier interface {
	VerifyDomain(ctx context.Context, email string) error
}
