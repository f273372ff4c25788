// Package wgpudriver implements the swatch driver layer on webgpu.
package wgpudriver

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/oliverbestmann/webgpu/wgpu"
)

var forceFallbackAdapter = os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"

func init() {
	// the driver context is single threaded, see driver.Driver
	runtime.LockOSThread()

	switch strings.ToUpper(os.Getenv("WGPU_LOG_LEVEL")) {
	case "OFF":
		wgpu.SetLogLevel(wgpu.LogLevelOff)
	case "ERROR":
		wgpu.SetLogLevel(wgpu.LogLevelError)
	case "WARN":
		wgpu.SetLogLevel(wgpu.LogLevelWarn)
	case "INFO":
		wgpu.SetLogLevel(wgpu.LogLevelInfo)
	case "DEBUG":
		wgpu.SetLogLevel(wgpu.LogLevelDebug)
	case "TRACE":
		wgpu.SetLogLevel(wgpu.LogLevelTrace)
	}
}

// Context encapsulates the low level state of the webgpu context the driver
// issues its calls into: the Device, Queue and active Adapter. It is
// headless; samplers and bindless handles do not need a surface.
type Context struct {
	*wgpu.Device
	*wgpu.Queue
	Adapter *wgpu.Adapter
}

func NewContext() (ctx *Context, err error) {
	defer func() {
		if err != nil && ctx != nil {
			ctx.Release()
			ctx = nil
		}
	}()

	ctx = &Context{}

	// create the webgpu instance
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	ctx.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
	})

	if err != nil {
		err = fmt.Errorf("request adapter: %w", err)
		return
	}

	// get a Device with the default settings
	ctx.Device, err = ctx.Adapter.RequestDevice(nil)
	if err != nil {
		err = fmt.Errorf("request device: %w", err)
		return
	}

	ctx.Queue = ctx.Device.GetQueue()

	return ctx, nil
}

func (c *Context) Release() {
	if c.Queue != nil {
		c.Queue.Release()
		c.Queue = nil
	}

	if c.Device != nil {
		c.Device.Release()
		c.Device = nil
	}

	if c.Adapter != nil {
		c.Adapter.Release()
		c.Adapter = nil
	}
}
