package leave

import (
	"errors"
	"strings"
	"time"

	leaveerrors "github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/leave/errors"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = apperror.NewValidator()

var dateLayouts = []string{dateLayout, time.RFC3339, time.RFC3339Nano}

// ValidateCreate checks a submission as a whole and returns the leave to
// store. Nothing is mutated when it fails; the error describes the first
// violation found.
func ValidateCreate(req CreateLeaveRequest) (*Leave, error) {
	if err := validate.Struct(req); err != nil {
		return nil, mapLeaveValidationError(err)
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, leaveerrors.ErrInvalidStartDate
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, leaveerrors.ErrInvalidEndDate
	}

	status := req.Status
	if status == "" {
		status = StatusPending
	}

	return &Leave{
		TeacherID:  req.TeacherID,
		LeaveType:  req.LeaveType,
		StartDate:  start,
		EndDate:    end,
		Days:       req.Days,
		Reason:     req.Reason,
		Status:     status,
		ApprovedBy: req.ApprovedBy,
		Notes:      req.Notes,
	}, nil
}

// ValidateUpdate turns a partial update into a Patch. Only enumerated fields
// and dates are checked.
func ValidateUpdate(req UpdateLeaveRequest) (Patch, error) {
	if err := validate.Struct(req); err != nil {
		return Patch{}, mapLeaveValidationError(err)
	}

	patch := Patch{
		LeaveType:  req.LeaveType,
		Days:       req.Days,
		Reason:     req.Reason,
		Status:     req.Status,
		ApprovedBy: req.ApprovedBy,
		Notes:      req.Notes,
	}
	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			return Patch{}, leaveerrors.ErrInvalidStartDate
		}
		patch.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := parseDate(*req.EndDate)
		if err != nil {
			return Patch{}, leaveerrors.ErrInvalidEndDate
		}
		patch.EndDate = &end
	}
	return patch, nil
}

func mapLeaveValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 && errs[0].StructField() == "Days" && errs[0].Tag() == "min" {
		return leaveerrors.ErrDaysRequired
	}
	return apperror.MapValidationError(err)
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
