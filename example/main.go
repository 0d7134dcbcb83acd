// FILE: patchopt/example/main.go
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gookit/color"

	"patchopt"
)

// stripDebugPatch is a stand-in for a real bytecode patch. It declares the
// options its transformation depends on and keeps typed references to read
// them back when it runs.
type stripDebugPatch struct {
	*patchopt.Base

	classes *patchopt.Option[[]string]
	level   *patchopt.Option[int]
	dryRun  *patchopt.Option[bool]
	token   *patchopt.Option[string]
}

func newStripDebugPatch() (*stripDebugPatch, error) {
	p := &stripDebugPatch{Base: patchopt.NewBase("strip-debug")}

	var err error
	p.classes, err = patchopt.Strings(p.Options(), "classes", patchopt.Decl[[]string]{
		Title:       "Target classes",
		Description: "Class name patterns to strip, accumulated across flags",
		Default:     patchopt.Some([]string{}),
		Accumulate:  true,
	})
	if err != nil {
		return nil, err
	}

	p.level, err = patchopt.Int(p.Options(), "level", patchopt.Decl[int]{
		Title:       "Strip level",
		Description: "0 keeps line numbers, 2 strips everything",
		Default:     patchopt.Some(1),
		Choices: []patchopt.Choice[int]{
			{Label: "lines", Value: patchopt.Some(0)},
			{Label: "locals", Value: patchopt.Some(1)},
			{Label: "all", Value: patchopt.Some(2)},
		},
		Validate: func(v patchopt.Value[int], _ *patchopt.Option[int]) bool {
			n, ok := v.Unwrap()
			return !ok || (n >= 0 && n <= 2)
		},
	})
	if err != nil {
		return nil, err
	}

	p.dryRun, err = patchopt.Bool(p.Options(), "dry-run", patchopt.Decl[bool]{
		Title:   "Dry run",
		Default: patchopt.Some(false),
	})
	if err != nil {
		return nil, err
	}

	p.token, err = patchopt.String(p.Options(), "token", patchopt.Decl[string]{
		Title:       "Signing token",
		Description: "Required token used to re-sign patched archives",
		Required:    true,
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}

// run reads every option immediately before transforming; any error is
// fatal to this patch's run.
func (p *stripDebugPatch) run() error {
	classes, err := p.classes.Get()
	if err != nil {
		return err
	}
	level, err := p.level.Get()
	if err != nil {
		return err
	}
	dry, err := p.dryRun.Get()
	if err != nil {
		return err
	}
	if _, err := p.token.Get(); err != nil {
		return err
	}

	color.Green.Printf("applying patch %s\n", p.Name())
	fmt.Printf("  classes=%v level=%d dry-run=%v\n",
		classes.Or(nil), level.Or(0), dry.Or(false))
	return nil
}

// renderForm shows what a CLI prompt loop would present: one line per
// option with its kind, requirement and hints.
func renderForm(p patchopt.Patch) {
	color.Bold.Printf("options for patch %s\n", p.Name())
	for _, o := range p.Options().All() {
		req := ""
		if o.Required() {
			req = color.Red.Sprint(" (required)")
		}
		fmt.Printf("  --%s <%s>%s  %s\n", o.Key(), o.Kind(), req, o.Description())
		for _, h := range o.Hints() {
			fmt.Printf("      %s = %v\n", h.Label, h.Value)
		}
	}
}

func main() {
	patch, err := newStripDebugPatch()
	if err != nil {
		color.Red.Println("patch construction failed:", err)
		os.Exit(1)
	}

	renderForm(patch)

	// Simulated command-line input, applied through the erased boundary.
	inputs := map[string]string{
		"classes": "com/example/Foo,com/example/Bar",
		"level":   "2",
		"dry-run": "true",
	}
	for key, input := range inputs {
		opt, err := patch.Options().Lookup(key)
		if err != nil {
			color.Red.Println(err)
			os.Exit(1)
		}
		if err := opt.ReadInput(input); err != nil {
			color.Red.Println(err)
			os.Exit(1)
		}
	}

	// The token is still missing, so the run fails with a required error.
	if err := patch.run(); err != nil {
		if errors.Is(err, patchopt.ErrValueRequired) {
			color.Yellow.Println("run blocked:", err)
		} else {
			color.Red.Println("run failed:", err)
			os.Exit(1)
		}
	}

	if err := patch.Options().Set("token", "s3cret"); err != nil {
		color.Red.Println(err)
		os.Exit(1)
	}
	if err := patch.run(); err != nil {
		color.Red.Println("run failed:", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Print(patch.Options().Debug())

	fmt.Println("current values as TOML:")
	if err := patch.Options().Dump(os.Stdout); err != nil {
		color.Red.Println(err)
		os.Exit(1)
	}
}
