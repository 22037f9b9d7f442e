package kernel

type JobPostingID string

func NewJobPostingID(id string) JobPostingID { return JobPostingID(id) }
func (p JobPostingID) String() string        { return string(p) }
func (p JobPostingID) IsEmpty() bool         { return string(p) == "" }

// JobseekerID identifies a job seeker profile, not the account that owns it
type JobseekerID string

func NewJobseekerID(id string) JobseekerID { return JobseekerID(id) }
func (j JobseekerID) String() string       { return string(j) }
func (j JobseekerID) IsEmpty() bool        { return string(j) == "" }

// CompanyID identifies a company record, not the account that owns it
type CompanyID string

func NewCompanyID(id string) CompanyID { return CompanyID(id) }
func (c CompanyID) String() string     { return string(c) }
func (c CompanyID) IsEmpty() bool      { return string(c) == "" }
