// Package utils provides the lenient conversions used at the storage and HTTP
// boundaries: driver values arrive as int64, []byte or strings depending on the
// SQL driver, and query parameters arrive from heterogeneous client versions.
package utils
