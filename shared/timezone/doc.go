// Package timezone pins every wall-clock computation to the shop's timezone
// (APP_TIMEZONE, an IANA name such as "Europe/Zurich"). Appointments and slots
// store a calendar date plus a clock time without an offset, so "today" and
// "already started" only make sense relative to this location.
package timezone
