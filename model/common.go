package model

import (
	"time"

	"golang.org/x/time/rate"
)

// IpLimiter 单个来源 IP 的限流状态
type IpLimiter struct {
	Limiter    *rate.Limiter
	LastActive time.Time
}
