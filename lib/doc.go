// Package lib implement convinience functions used by other
// packages. Shall not import anything other than standard library.
package lib
