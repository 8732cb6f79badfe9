package controller

import (
	"errors"

	"twscreener/customerrors"
	"twscreener/model"

	"github.com/danielgtaylor/huma/v2"
)

// NewResponse creates a success response with the given data and message.
func NewResponse(data any, message string) *model.DefaultResponse {
	return &model.DefaultResponse{
		Body: model.Response{
			Success: true,
			Message: message,
			Data:    data,
		},
	}
}

// NewErrorResponse creates an error response (conceptually, though Huma handles HTTP errors separately).
func NewErrorResponse(err string) *model.DefaultResponse {
	return &model.DefaultResponse{
		Body: model.Response{
			Success: false,
			Error:   err,
		},
	}
}

// toHumaError maps service sentinels onto HTTP statuses.
func toHumaError(err error) error {
	switch {
	case errors.Is(err, customerrors.ErrUnknownCard), errors.Is(err, customerrors.ErrInvalidTicker):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, customerrors.ErrScanInProgress):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, customerrors.ErrInvalidResponseShape), errors.Is(err, customerrors.ErrTransport):
		return huma.Error502BadGateway(err.Error())
	case errors.Is(err, customerrors.ErrAggregateScan):
		return huma.Error502BadGateway(customerrors.AggregateScanBanner)
	default:
		return huma.Error500InternalServerError(err.Error())
	}
}
