package object

import "go.uber.org/zap"

// RuntimeOptions configures a Runtime. The zero value is valid: a nil
// Logger falls back to zap.NewNop(), matching the default-construction
// pattern used throughout the teacher codebase's service constructors
// (e.g. services.LocalAddrListerOptions).
type RuntimeOptions struct {
	Logger *zap.Logger
}

// Runtime is a named grouping for one or more object graphs sharing a
// logger. It stands in for the C library's package-id threaded through
// sc_calloc for memory accounting (original_source/src/sc_object.c); Go has
// no manual allocator to account against, but the grouping concept survives
// so construction in independent graphs of the same process can be logged to
// distinct loggers. Search's cycle/re-entry notices do not go through a
// Runtime; they always use the package-wide logger set by SetLogger.
//
// Runtime does not otherwise change the runtime's semantics: objects built
// through it behave identically to ones built with the package-level
// KlassNew/NewFromKlass, which remain available for callers that don't need
// per-graph logging.
type Runtime struct {
	log *zap.Logger
}

// NewRuntime constructs a Runtime from opts.
func NewRuntime(opts RuntimeOptions) *Runtime {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Runtime{log: log.Named("object")}
}

// KlassNew builds a root klass and logs its creation at debug level.
func (rt *Runtime) KlassNew() *Object {
	o := KlassNew()
	rt.log.Debug("klass created")
	return o
}

// NewFromKlass builds an object delegating to d and logs its creation at
// debug level.
func (rt *Runtime) NewFromKlass(d *Object, args *Args) *Object {
	o := NewFromKlass(d, args)
	rt.log.Debug("object created from klass")
	return o
}

// NewFromKlassArgs is the Runtime-scoped convenience form of
// NewFromKlassArgs.
func (rt *Runtime) NewFromKlassArgs(d *Object, kvs ...KV) *Object {
	return rt.NewFromKlass(d, NewArgs(kvs...))
}

// Logger returns the Runtime's logger, named "object", for callers that
// want to log alongside it (e.g. the introspect server).
func (rt *Runtime) Logger() *zap.Logger {
	return rt.log
}
