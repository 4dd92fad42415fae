package domain

import "errors"

var (
	ErrInputNotFound     = errors.New("input not found")
	ErrDecode            = errors.New("could not decode input")
	ErrEncodeOrWrite     = errors.New("could not encode or write output")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrInvalidSize       = errors.New("invalid target size")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDestinationExists = errors.New("destination already exists")
	ErrRegistryEmpty     = errors.New("can't fetch commands, registry not initialized")
	ErrCommandNotFound   = errors.New("command not found")
)

const (
	DefaultWidth       = 250
	DefaultHeight      = 250
	DefaultSuffix      = "_scaled"
	DefaultPattern     = "*.png"
	DefaultSampleName  = "sample.xlsx"
	DefaultGatherExt   = ".jt"
	DefaultSheetName   = "Sheet1"
	WorkbookPattern    = "*.xlsx"
	workbookLockPrefix = "~$"
)
