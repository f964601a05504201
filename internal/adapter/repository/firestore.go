package repository

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const sliceSchemaVersion = 1

// IsNotFound reports whether err is a Firestore missing-document error.
func IsNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
