package reports

const (
	typeIncome = "INCOME"
)

type Overview struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`
}

type Totals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

type MemberTotals struct {
	Name    string  `json:"name"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

type Summary struct {
	Month    int                     `json:"month"`
	Year     int                     `json:"year"`
	Totals   Totals                  `json:"totals"`
	ByMember map[string]MemberTotals `json:"byMember"`
}

// MemberComparison is the ordered form for callers needing stable iteration.
type MemberComparison struct {
	MemberID string  `json:"memberId"`
	Name     string  `json:"name"`
	Income   float64 `json:"income"`
	Expense  float64 `json:"expense"`
}

// EntryRow is the aggregation input: one ledger entry with its author.
type EntryRow struct {
	UserID   string
	UserName string
	Amount   float64
	Type     string
}

type MemberRef struct {
	ID   string
	Name string
}
