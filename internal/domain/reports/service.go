package reports

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidPeriod = errors.New("invalid month or year")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// MonthlyOverview sums the organization's entries for one calendar month by
// type. A month with no entries yields zero totals.
func (s *Service) MonthlyOverview(ctx context.Context, orgID string, month, year int) (Overview, error) {
	from, to, err := monthWindow(month, year)
	if err != nil {
		return Overview{}, err
	}

	rows, err := s.repo.Entries(ctx, orgID, from, to)
	if err != nil {
		return Overview{}, err
	}

	result := Overview{Month: month, Year: year}
	for _, row := range rows {
		if row.Type == typeIncome {
			result.TotalIncome += row.Amount
		} else {
			result.TotalExpense += row.Amount
		}
	}

	return result, nil
}

// MonthlySummary groups one month's entries by author.
func (s *Service) MonthlySummary(ctx context.Context, orgID string, month, year int) (Summary, error) {
	from, to, err := monthWindow(month, year)
	if err != nil {
		return Summary{}, err
	}

	rows, err := s.repo.Entries(ctx, orgID, from, to)
	if err != nil {
		return Summary{}, err
	}

	result := Summary{
		Month:    month,
		Year:     year,
		ByMember: make(map[string]MemberTotals),
	}
	for _, row := range rows {
		member := result.ByMember[row.UserID]
		member.Name = row.UserName
		if row.Type == typeIncome {
			result.Totals.Income += row.Amount
			member.Income += row.Amount
		} else {
			result.Totals.Expense += row.Amount
			member.Expense += row.Amount
		}
		result.ByMember[row.UserID] = member
	}

	return result, nil
}

// Comparison produces per-member totals for APPROVED members only, in join
// order. Members without entries appear with zero totals.
func (s *Service) Comparison(ctx context.Context, orgID string, month, year int) ([]MemberComparison, error) {
	from, to, err := monthWindow(month, year)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.ApprovedMembers(ctx, orgID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.Entries(ctx, orgID, from, to)
	if err != nil {
		return nil, err
	}

	totalsByUser := make(map[string]Totals, len(members))
	for _, row := range rows {
		totals := totalsByUser[row.UserID]
		if row.Type == typeIncome {
			totals.Income += row.Amount
		} else {
			totals.Expense += row.Amount
		}
		totalsByUser[row.UserID] = totals
	}

	result := make([]MemberComparison, 0, len(members))
	for _, member := range members {
		totals := totalsByUser[member.ID]
		result = append(result, MemberComparison{
			MemberID: member.ID,
			Name:     member.Name,
			Income:   totals.Income,
			Expense:  totals.Expense,
		})
	}

	return result, nil
}

// MonthWindow computes the half-open interval [first day of month/year,
// first day of the following month) in UTC.
func MonthWindow(month, year int) (time.Time, time.Time, error) {
	return monthWindow(month, year)
}

func monthWindow(month, year int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 || year < 2000 {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	return from, to, nil
}
