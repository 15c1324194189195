package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// Error variables classify S3 failures. Load wraps them in a *catalog.LoadingError.
var (
	// ErrInvalidConfig indicates a missing bucket or region.
	ErrInvalidConfig = errors.New("invalid S3 source configuration")

	// ErrPaginatorNil indicates a custom client without a paginator factory.
	ErrPaginatorNil = errors.New("paginator factory returned nil")

	// ErrBucketNotFound indicates the configured bucket does not exist.
	ErrBucketNotFound = errors.New("bucket not found")

	// ErrObjectNotFound indicates an object vanished between listing and download.
	ErrObjectNotFound = errors.New("object not found")

	// ErrObjectTooLarge indicates a locale file above the size limit.
	ErrObjectTooLarge = errors.New("object exceeds size limit")

	// ErrAccessDenied indicates missing permissions on the bucket or object.
	ErrAccessDenied = errors.New("access denied")

	// ErrRequestTimeout indicates S3 timed out the request.
	ErrRequestTimeout = errors.New("request timeout")

	// ErrServiceUnavailable indicates throttling or an outage; retryable.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrInvalidObjectState indicates an archived object that must be restored first.
	ErrInvalidObjectState = errors.New("invalid object state")

	// ErrOperationTimeout indicates the caller's context deadline passed.
	ErrOperationTimeout = errors.New("operation timeout")

	// ErrOperationCanceled indicates the caller's context was canceled.
	ErrOperationCanceled = errors.New("operation canceled")
)

// classifyS3Error converts S3 errors to the sentinels above.
func classifyS3Error(err error, operation string) error {
	if err == nil {
		return nil
	}

	// Context errors first so cancellation is reported as such.
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s operation", ErrOperationTimeout, operation)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s operation", ErrOperationCanceled, operation)
	}

	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, err)
	}

	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return ErrBucketNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		switch code {
		case "AccessDenied":
			return fmt.Errorf("%w: %s operation", ErrAccessDenied, operation)
		case "RequestTimeout":
			return fmt.Errorf("%w: %s operation", ErrRequestTimeout, operation)
		case "SlowDown", "ServiceUnavailable":
			return fmt.Errorf("%w: %s operation", ErrServiceUnavailable, operation)
		case "InvalidObjectState":
			return fmt.Errorf("%w: %s operation", ErrInvalidObjectState, operation)
		case "NoSuchKey":
			return fmt.Errorf("%w: %s", ErrObjectNotFound, err)
		case "NoSuchBucket":
			return ErrBucketNotFound
		default:
			return fmt.Errorf("%s operation failed (code: %s): %w", operation, code, err)
		}
	}

	return fmt.Errorf("%s operation failed: %w", operation, err)
}
