// Package render turns scanned rows into the public records of a catalog.
//
// Rendering is an allow-list: a record carries exactly the fields its
// descriptor declares, so internal ids and the columns used to resolve
// references never leak. Foreign keys are replaced by tokens from the lookup
// cache or from inline scans; unknown references become null.
package render
