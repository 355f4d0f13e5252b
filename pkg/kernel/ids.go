package kernel

type CandidateID string

func NewCandidateID(id string) CandidateID { return CandidateID(id) }
func (c CandidateID) String() string       { return string(c) }
func (c CandidateID) IsEmpty() bool        { return string(c) == "" }

type JobID string

func NewJobID(id string) JobID { return JobID(id) }
func (j JobID) String() string { return string(j) }
func (j JobID) IsEmpty() bool  { return string(j) == "" }

type AnalysisID string

func NewAnalysisID(id string) AnalysisID { return AnalysisID(id) }
func (a AnalysisID) String() string      { return string(a) }
func (a AnalysisID) IsEmpty() bool       { return string(a) == "" }

type ReportID string

func NewReportID(id string) ReportID { return ReportID(id) }
func (r ReportID) String() string    { return string(r) }
func (r ReportID) IsEmpty() bool     { return string(r) == "" }

type SessionID string

func NewSessionID(id string) SessionID { return SessionID(id) }
func (s SessionID) String() string     { return string(s) }
func (s SessionID) IsEmpty() bool      { return string(s) == "" }

type AnalysisJobID string

func NewAnalysisJobID(id string) AnalysisJobID { return AnalysisJobID(id) }
func (a AnalysisJobID) String() string         { return string(a) }
func (a AnalysisJobID) IsEmpty() bool          { return string(a) == "" }
