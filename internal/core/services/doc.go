// Package services implements the driving port interfaces.
// Services forward to the driven stores; field validation is done by
// the callers before values reach them.
package services
