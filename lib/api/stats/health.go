package stats

import (
	"time"

	"github.com/DBC-Works/swiki/lib/db"
	"github.com/gofiber/fiber/v2"
)

type DBChecker struct {
	db db.DataStore
}

func (d DBChecker) Name() string {
	return "database"
}

func (d DBChecker) Check() Check {
	err := d.db.Ping()

	if err != nil {
		return Check{
			Status:        StatusFail,
			ComponentType: "datastore",
			Output:        err.Error(),
		}
	}

	return Check{
		Status:        StatusPass,
		ComponentType: "datastore",
		Observed:      "ok",
		ObservedAt:    time.Now().UTC().Format(time.RFC3339),
	}
}

// PageSetChecker reads the stored page set and reports the number of content pages.
type PageSetChecker struct {
	db db.DataStore
}

func (p PageSetChecker) Name() string {
	return "pageSet"
}

func (p PageSetChecker) Check() Check {
	pageSet, err := p.db.GetPageSet()
	if err != nil {
		return Check{
			Status: StatusFail,
			Output: err.Error(),
		}
	}

	return Check{
		Status:       StatusPass,
		Observed:     len(pageSet.Pages),
		ObservedUnit: "pages",
	}
}

// Handler godoc
// @Summary Health check endpoint
// @Description Returns the health status of the service (RFC Health Check Draft)
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Service is healthy"
// @Failure 503 {object} HealthResponse "Service is unhealthy"
// @Router /stats/health [get]
func Handler(
	version string,
	releaseID string,
	serviceID string,
	checkers []Checker,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		resp := HealthResponse{
			Status:    StatusPass,
			Version:   version,
			ReleaseID: releaseID,
			ServiceID: serviceID,
			Checks:    map[string][]Check{},
		}

		httpStatus := fiber.StatusOK

		for _, checker := range checkers {
			check := checker.Check()
			resp.Checks[checker.Name()] = []Check{check}

			switch check.Status {
			case StatusFail:
				resp.Status = StatusFail
				httpStatus = fiber.StatusServiceUnavailable
			case StatusWarn:
				if resp.Status != StatusFail {
					resp.Status = StatusWarn
					httpStatus = fiber.StatusOK
				}
			}
		}

		return c.Status(httpStatus).JSON(resp)
	}
}
