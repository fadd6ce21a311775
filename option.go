// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sponge

import "go.uber.org/zap"

// Option configures a session at [Start].
type Option func(*options)

type options struct {
	domainSeparator uint32
	logger          *zap.Logger
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithDomainSeparator sets the tag passed through to the underlying
// sponge's Start. The default is 0. The session never interprets it.
func WithDomainSeparator(ds uint32) Option {
	return func(o *options) { o.domainSeparator = ds }
}

// WithLogger installs a logger for lifecycle events. A nil logger keeps
// the default no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
