package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to categorised errors leaving the tags command layer.
// Hosts embedding the build command match on these instead of message
// strings.
const (
	CodeBuildValidation = "TAGS_BUILD_VALIDATION_FAILED"
	CodeBuildCanceled   = "TAGS_BUILD_CANCELED"
	CodeBuildTimeout    = "TAGS_BUILD_TIMEOUT"
	CodeBuildContext    = "TAGS_BUILD_CONTEXT_ERROR"
	CodeBuildFailed     = "TAGS_BUILD_FAILED"
)

// wrapValidationError categorises a rejected command message. Errors that
// already carry a category pass through untouched so sentinels from the
// plugin pipeline keep their original classification.
func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "tags build rejected an invalid message").
		WithTextCode(CodeBuildValidation)
}

// wrapContextError maps context termination onto the build-scoped codes, so
// a host can tell a cancelled scan from one that ran out of time.
func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}

	code, msg := CodeBuildContext, "tags build context error"
	switch {
	case errors.Is(err, context.Canceled):
		code, msg = CodeBuildCanceled, "tags build cancelled"
	case errors.Is(err, context.DeadlineExceeded):
		code, msg = CodeBuildTimeout, "tags build deadline exceeded"
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, msg).WithTextCode(code)
}

// wrapExecuteError categorises a failure from the wrapped build function.
// Pipeline sentinels (malformed front matter, template resolution) stay
// reachable through errors.Is on the wrapped chain.
func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "tags build failed").
		WithTextCode(CodeBuildFailed)
}
