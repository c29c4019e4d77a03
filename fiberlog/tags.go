package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid      = "pid"
	TagStatus   = "status"
	TagLatency  = "latency"
	TagMethod   = "method"
	TagPath     = "path"
	TagIP       = "ip"
	TagUA       = "user_agent"
	TagBytesOut = "bytes_out"
)

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag вычисляет значение тега для записи в лог
type FuncTag func(c *fiber.Ctx, d *data) interface{}

var funcTagMap = map[string]FuncTag{
	TagPid: func(c *fiber.Ctx, d *data) interface{} {
		return d.pid
	},
	TagStatus: func(c *fiber.Ctx, d *data) interface{} {
		return c.Response().StatusCode()
	},
	TagLatency: func(c *fiber.Ctx, d *data) interface{} {
		return d.end.Sub(d.start).String()
	},
	TagMethod: func(c *fiber.Ctx, d *data) interface{} {
		return c.Method()
	},
	TagPath: func(c *fiber.Ctx, d *data) interface{} {
		return c.Path()
	},
	TagIP: func(c *fiber.Ctx, d *data) interface{} {
		return c.IP()
	},
	TagUA: func(c *fiber.Ctx, d *data) interface{} {
		return string(c.Request().Header.UserAgent())
	},
	TagBytesOut: func(c *fiber.Ctx, d *data) interface{} {
		return len(c.Response().Body())
	},
}

func getFuncTagMap(cfg Config, d *data) map[string]FuncTag {
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if fn, ok := funcTagMap[tag]; ok {
			result[tag] = fn
		}
	}
	return result
}
