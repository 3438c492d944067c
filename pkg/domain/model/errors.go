package model

import "github.com/m-mizutani/goerr/v2"

// Error tags for failures of the chart pipeline
var (
	ErrTagFileNotFound  = goerr.NewTag("file_not_found")
	ErrTagReadFailure   = goerr.NewTag("read_failure")
	ErrTagMissingColumn = goerr.NewTag("missing_column")
	ErrTagInvalidDate   = goerr.NewTag("invalid_date")
	ErrTagInvalidValue  = goerr.NewTag("invalid_value")
	ErrTagRender        = goerr.NewTag("render_failure")
	ErrTagViewer        = goerr.NewTag("viewer_failure")
)
