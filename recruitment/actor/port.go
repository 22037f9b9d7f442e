package actor

import (
	"context"

	"github.com/Abraxas-365/campus/pkg/kernel"
)

// Directory maps user accounts to the profile records they own.
// found is false when the account has no such record.
type Directory interface {
	JobseekerIDByUser(ctx context.Context, userID kernel.UserID) (id kernel.JobseekerID, found bool, err error)
	CompanyIDByUser(ctx context.Context, userID kernel.UserID) (id kernel.CompanyID, found bool, err error)
}
