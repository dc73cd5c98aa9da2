//go:build nodesktop

package main

import (
	"errors"

	"github.com/gogpu/splathost/backend"
	"github.com/gogpu/splathost/host"
)

func runDesktop(backend.Backend) (*host.Host, error) {
	return nil, errors.New("desktop platform not built (nodesktop tag)")
}
