// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

//go:build cgo

package ghdl

/*
#cgo linux LDFLAGS: -ldl -rdynamic
#include <dlfcn.h>
#include <stdlib.h>

typedef void (*ghdl_void_fn)(void);
typedef void (*ghdl_options_fn)(int, char **);
typedef int (*ghdl_step_fn)(void);

static void ghdl_call_void(void *f) { ((ghdl_void_fn)f)(); }
static void ghdl_call_options(void *f, int argc, char **argv) { ((ghdl_options_fn)f)(argc, argv); }
static int ghdl_call_step(void *f) { return ((ghdl_step_fn)f)(); }
*/
import "C"

import (
	"os"
	"unsafe"

	"github.com/db47h/cosim"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Library is a GHDL simulation kernel loaded from a shared library. It
// implements cosim.Kernel.
//
type Library struct {
	path string
	h    unsafe.Pointer
	fns  [len(symbols)]unsafe.Pointer
	argv []*C.char
	log  *logrus.Entry
}

func dlerror() string {
	if e := C.dlerror(); e != nil {
		return C.GoString(e)
	}
	return "unknown error"
}

// Open loads the shared library at path and resolves its entry points. cb
// receives the calls to sim_spi_init and sim_spi_rxtx until Close.
//
func Open(path string, cb cosim.Callback) (*Library, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrap(cosim.ErrArtifactLoad, err.Error())
	}
	log, err := bind(cb)
	if err != nil {
		return nil, err
	}

	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	C.dlerror()
	h := C.dlopen(cpath, C.RTLD_LAZY|C.RTLD_LOCAL)
	if h == nil {
		unbind()
		return nil, errors.Wrapf(cosim.ErrArtifactLoad, "dlopen %s: %s", path, dlerror())
	}

	l := &Library{path: path, h: h, log: log.WithField("artifact", path)}
	for i, name := range symbols {
		cname := C.CString(name)
		f := C.dlsym(h, cname)
		C.free(unsafe.Pointer(cname))
		if f == nil {
			err := errors.Wrapf(cosim.ErrArtifactLoad, "resolve %s in %s: %s", name, path, dlerror())
			C.dlclose(h)
			unbind()
			return nil, err
		}
		l.fns[i] = f
	}
	return l, nil
}

// Init calls grt_init.
//
func (l *Library) Init() {
	l.log.Debug("grt_init")
	C.ghdl_call_void(l.fns[fnInit])
}

// SetOptions calls grt_main_options with args followed by a NULL entry. The
// argument strings live until Close.
//
func (l *Library) SetOptions(args []string) {
	l.log.WithField("args", args).Debug("grt_main_options")
	n := len(args) + 1
	p := C.malloc(C.size_t(n) * C.size_t(unsafe.Sizeof((*C.char)(nil))))
	argv := unsafe.Slice((**C.char)(p), n)
	for i, a := range args {
		argv[i] = C.CString(a)
	}
	argv[n-1] = nil
	l.argv = argv
	C.ghdl_call_options(l.fns[fnOptions], C.int(n), (**C.char)(p))
}

// Elaborate calls grt_main_elab.
//
func (l *Library) Elaborate() {
	l.log.Debug("grt_main_elab")
	C.ghdl_call_void(l.fns[fnElab])
}

// SimInit calls __ghdl_simulation_init.
//
func (l *Library) SimInit() {
	l.log.Debug("__ghdl_simulation_init")
	C.ghdl_call_void(l.fns[fnSimInit])
}

// Step calls __ghdl_simulation_step.
//
func (l *Library) Step() int {
	return int(C.ghdl_call_step(l.fns[fnStep]))
}

// Close unloads the library and releases the entry points.
//
func (l *Library) Close() error {
	if l.h == nil {
		return errors.New("library already closed")
	}
	var err error
	C.dlerror()
	if C.dlclose(l.h) != 0 {
		err = errors.Errorf("dlclose %s: %s", l.path, dlerror())
	}
	l.h = nil
	for _, a := range l.argv {
		if a != nil {
			C.free(unsafe.Pointer(a))
		}
	}
	if len(l.argv) > 0 {
		C.free(unsafe.Pointer(&l.argv[0]))
	}
	l.argv = nil
	unbind()
	return err
}
