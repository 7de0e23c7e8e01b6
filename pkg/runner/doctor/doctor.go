// Package doctor provides the configuration health check runner.
package doctor

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/habitx/pkg/config"
	"tableflip.dev/habitx/pkg/printers"
)

// Doctor prints the health of each collaborator setting and the mode the
// dashboard will run in.
type Doctor struct {
	Config *config.Config
}

func (n *Doctor) Do(ctx context.Context) error {
	if n.Config == nil {
		return errors.New("can not check, no config")
	}
	fmt.Println("")

	pp := printers.PrettyPrint{}
	pp.Title("configuration")
	pp.Diagnostics(n.Config.Diagnostics())

	switch {
	case n.Config.Remote():
		fmt.Println("mode: hosted record store")
	case n.Config.Configured():
		fmt.Printf("mode: local record store at %s\n", n.Config.StorePath())
	default:
		fmt.Println("mode: unconfigured")
	}
	fmt.Println("")
	return nil
}
