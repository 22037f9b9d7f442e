package actor

import (
	"context"

	"github.com/Abraxas-365/campus/pkg/iam/auth"
	"github.com/Abraxas-365/campus/pkg/logx"
)

type Resolver struct {
	directory Directory
}

func NewResolver(directory Directory) *Resolver {
	return &Resolver{directory: directory}
}

// Resolve builds the actor for an identity. A nil or unapproved identity is a Guest.
// Missing profile records leave the variant's id empty.
func (r *Resolver) Resolve(ctx context.Context, identity *auth.Identity) (Actor, error) {
	if identity == nil {
		return Anonymous(), nil
	}
	if !identity.IsApproved() {
		return Guest{User: identity.UserID, RoleName: identity.Role}, nil
	}

	switch identity.Role {
	case auth.RoleAdmin:
		return Admin{User: identity.UserID}, nil

	case auth.RoleCompany:
		companyID, found, err := r.directory.CompanyIDByUser(ctx, identity.UserID)
		if err != nil {
			return nil, ErrStoreFailure(err).WithDetail("user_id", identity.UserID.String())
		}
		if !found {
			logx.Debugf("company account %s has no company record", identity.UserID)
		}
		return Company{User: identity.UserID, CompanyID: companyID}, nil

	case auth.RoleJobseeker:
		profileID, found, err := r.directory.JobseekerIDByUser(ctx, identity.UserID)
		if err != nil {
			return nil, ErrStoreFailure(err).WithDetail("user_id", identity.UserID.String())
		}
		if !found {
			logx.Debugf("jobseeker account %s has no profile", identity.UserID)
		}
		return Jobseeker{User: identity.UserID, ProfileID: profileID}, nil
	}

	return Guest{User: identity.UserID, RoleName: identity.Role}, nil
}
