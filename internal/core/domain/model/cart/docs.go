// Package cart models the server-held shopping cart of a customer session.
// Lines carry prices computed at the time they were added or changed; the
// cart only sums them.
package cart
