/*
Package otquery answers common questions about an OpenType font: its type,
its names, and its metrics.

Functions in otquery never fail with an error. Information which cannot be
found or decoded from a font is reported as absent, either by a boolean flag
or by zero values.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otquery

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontkit.query'
func tracer() tracing.Trace {
	return tracing.Select("fontkit.query")
}
