package customerrors

import "errors"

var (
	ErrDecodeFailure        = errors.New("model response is not valid JSON")
	ErrInvalidResponseShape = errors.New("invalid data returned from model")
	ErrTransport            = errors.New("model call failed")
	ErrAggregateScan        = errors.New("aggregate scan aborted")
	ErrScanInProgress       = errors.New("a full scan is already running")
	ErrCardAborted          = errors.New("card scan aborted before completion")
	ErrUnknownCard          = errors.New("unknown dashboard card")
	ErrInvalidTicker        = errors.New("invalid ticker")
)

// AggregateScanBanner is the single user-facing message of a failed full scan.
const AggregateScanBanner = "部分掃描發生錯誤，請檢查網路連線後重試。"
