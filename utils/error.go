package utils

import "errors"

var ErrorProjectRequired = errors.New("project id is required")

var ErrorInvalidRecords = errors.New("invalid project records")
