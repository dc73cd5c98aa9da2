//go:build !nodesktop

package main

import (
	"github.com/gogpu/splathost/backend"
	"github.com/gogpu/splathost/host"
	"github.com/gogpu/splathost/platform/desktop"
)

func runDesktop(b backend.Backend) (*host.Host, error) {
	g, err := desktop.New(b, desktop.WithTitle("splatview ("+b.Name()+")"))
	if err != nil {
		return nil, err
	}
	return g.Host(), g.Run()
}
