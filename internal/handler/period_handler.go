package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"taxtally/internal/config"
	"taxtally/internal/domain"
	"taxtally/internal/fiscal"
)

// PeriodHandler handles reporting period and filing deadline endpoints.
type PeriodHandler struct {
	cfg *config.ReportConfig
}

// NewPeriodHandler creates a new PeriodHandler.
func NewPeriodHandler(cfg *config.ReportConfig) *PeriodHandler {
	return &PeriodHandler{cfg: cfg}
}

// parsePeriod extracts a reporting period from query params. The shape
// depends on kind:
//
//	kind=month    month=YYYY-MM
//	kind=quarter  year=<FY start year> quarter=1..4
//	kind=fy       year=<FY start year>
//	kind=custom   from=YYYY-MM-DD to=YYYY-MM-DD
func parsePeriod(c *gin.Context) (domain.Period, error) {
	kind := domain.PeriodKind(c.DefaultQuery("kind", string(domain.PeriodKindMonth)))

	switch kind {
	case domain.PeriodKindMonth:
		t, err := time.Parse("2006-01", c.Query("month"))
		if err != nil {
			return domain.Period{}, fmt.Errorf("invalid 'month': must be YYYY-MM")
		}
		return fiscal.Month(t), nil

	case domain.PeriodKindQuarter:
		year, err := strconv.Atoi(c.Query("year"))
		if err != nil {
			return domain.Period{}, fmt.Errorf("invalid 'year': must be the financial year's starting calendar year")
		}
		q, err := strconv.Atoi(c.Query("quarter"))
		if err != nil || q < 1 || q > 4 {
			return domain.Period{}, fmt.Errorf("invalid 'quarter': must be 1 to 4")
		}
		return fiscal.QuarterOf(year, q), nil

	case domain.PeriodKindFY:
		year, err := strconv.Atoi(c.Query("year"))
		if err != nil {
			return domain.Period{}, fmt.Errorf("invalid 'year': must be the financial year's starting calendar year")
		}
		return fiscal.FinancialYearOf(year), nil

	case domain.PeriodKindCustom:
		from, err := time.Parse("2006-01-02", c.Query("from"))
		if err != nil {
			return domain.Period{}, fmt.Errorf("invalid 'from': must be YYYY-MM-DD")
		}
		to, err := time.Parse("2006-01-02", c.Query("to"))
		if err != nil {
			return domain.Period{}, fmt.Errorf("invalid 'to': must be YYYY-MM-DD")
		}
		if to.Before(from) {
			return domain.Period{}, fmt.Errorf("invalid range: 'to' precedes 'from'")
		}
		return fiscal.Custom(from, to), nil

	default:
		return domain.Period{}, fmt.Errorf("invalid 'kind': must be one of month, quarter, fy, custom")
	}
}

// Options handles GET /api/v1/periods/options
func (h *PeriodHandler) Options(c *gin.Context) {
	now := time.Now().UTC()
	count := 12
	if n, err := strconv.Atoi(c.Query("count")); err == nil && n > 0 && n <= 60 {
		count = n
	}

	kind := domain.PeriodKind(c.DefaultQuery("kind", string(domain.PeriodKindMonth)))
	var opts []domain.Period
	switch kind {
	case domain.PeriodKindFY:
		opts = fiscal.FYOptions(now, h.cfg.FYYearsBack, h.cfg.FYYearsForward)
	case domain.PeriodKindQuarter:
		opts = fiscal.QuarterOptions(now, count)
	case domain.PeriodKindMonth:
		opts = fiscal.MonthOptions(now, count)
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_PERIOD", "invalid 'kind': must be one of month, quarter, fy")
		return
	}
	RespondOK(c, opts)
}

// Deadlines handles GET /api/v1/periods/deadlines
func (h *PeriodHandler) Deadlines(c *gin.Context) {
	period, err := parsePeriod(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_PERIOD", err.Error())
		return
	}

	gstr1, gstr3b := fiscal.FilingDeadlines(period, time.Now().UTC())
	RespondOK(c, gin.H{
		"period":    period,
		"deadlines": []domain.DeadlineInfo{gstr1, gstr3b},
	})
}
