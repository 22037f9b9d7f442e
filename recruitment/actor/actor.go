// Package actor models the caller of a core operation.
//
// An Actor is one of Admin, Company, Jobseeker or Guest. Each variant carries
// only the data its permission checks need, so callers dispatch with a type
// switch instead of comparing role strings.
package actor

import (
	"github.com/Abraxas-365/campus/pkg/iam/auth"
	"github.com/Abraxas-365/campus/pkg/kernel"
)

type Actor interface {
	UserID() kernel.UserID
	Role() auth.Role
	sealed()
}

type Admin struct {
	User kernel.UserID
}

// Company acts for one company record. CompanyID is empty when the account
// has no company record yet.
type Company struct {
	User      kernel.UserID
	CompanyID kernel.CompanyID
}

// Jobseeker acts for one profile. ProfileID is empty when the account has no
// job seeker profile yet.
type Jobseeker struct {
	User      kernel.UserID
	ProfileID kernel.JobseekerID
}

// Guest is an unauthenticated caller, an unapproved account, or a role
// without access to applications (e.g. agent).
type Guest struct {
	User     kernel.UserID
	RoleName auth.Role
}

func (a Admin) UserID() kernel.UserID     { return a.User }
func (a Company) UserID() kernel.UserID   { return a.User }
func (a Jobseeker) UserID() kernel.UserID { return a.User }
func (a Guest) UserID() kernel.UserID     { return a.User }

func (Admin) Role() auth.Role     { return auth.RoleAdmin }
func (Company) Role() auth.Role   { return auth.RoleCompany }
func (Jobseeker) Role() auth.Role { return auth.RoleJobseeker }
func (a Guest) Role() auth.Role   { return a.RoleName }

func (Admin) sealed()     {}
func (Company) sealed()   {}
func (Jobseeker) sealed() {}
func (Guest) sealed()     {}

// Anonymous is the actor of a request without a valid credential
func Anonymous() Actor {
	return Guest{}
}
