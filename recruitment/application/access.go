package application

import "github.com/Abraxas-365/campus/recruitment/actor"

// CanAccess reports whether the caller may read the application.
// Empty ids on either side never match.
func CanAccess(caller actor.Actor, app *Application) bool {
	if app == nil {
		return false
	}
	switch c := caller.(type) {
	case actor.Admin:
		return true
	case actor.Company:
		return !c.CompanyID.IsEmpty() && c.CompanyID == app.CompanyID
	case actor.Jobseeker:
		return !c.ProfileID.IsEmpty() && c.ProfileID == app.JobseekerID
	default:
		return false
	}
}

// CanUpdate reports whether the caller may change the review state.
// Job seekers can read their applications but never update them.
func CanUpdate(caller actor.Actor, app *Application) bool {
	if app == nil {
		return false
	}
	switch c := caller.(type) {
	case actor.Admin:
		return true
	case actor.Company:
		return !c.CompanyID.IsEmpty() && c.CompanyID == app.CompanyID
	default:
		return false
	}
}

// MayUpdateAny is the role gate applied before the application is loaded
func MayUpdateAny(caller actor.Actor) bool {
	switch caller.(type) {
	case actor.Admin, actor.Company:
		return true
	default:
		return false
	}
}
