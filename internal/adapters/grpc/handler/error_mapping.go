package handler

import (
	"context"
	"errors"

	"github.com/ogurasousui/workforce/internal/adapters/repository/memory"
	"github.com/ogurasousui/workforce/internal/core/employee"
	"github.com/ogurasousui/workforce/internal/core/notification"
	"github.com/ogurasousui/workforce/internal/core/project"
	"github.com/ogurasousui/workforce/internal/core/staffing"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, employee.ErrInvalidID),
		errors.Is(err, employee.ErrInvalidName),
		errors.Is(err, employee.ErrInvalidPosition),
		errors.Is(err, employee.ErrInvalidEmail),
		errors.Is(err, employee.ErrInvalidPerformanceRating),
		errors.Is(err, employee.ErrInvalidVacationDays),
		errors.Is(err, employee.ErrInvalidIndex),
		errors.Is(err, employee.ErrInvalidNotificationKind),
		errors.Is(err, project.ErrInvalidID),
		errors.Is(err, project.ErrInvalidName),
		errors.Is(err, project.ErrInvalidTitle),
		errors.Is(err, project.ErrInvalidStatus),
		errors.Is(err, notification.ErrInvalidID),
		errors.Is(err, notification.ErrInvalidTitle),
		errors.Is(err, notification.ErrInvalidType),
		errors.Is(err, staffing.ErrInvalidID):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, employee.ErrInsufficientVacationDays):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, memory.ErrDuplicateID):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, project.ErrProjectNotFound),
		errors.Is(err, project.ErrTaskNotFound),
		errors.Is(err, notification.ErrNotificationNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
