package director

import (
	"fmt"

	"github.com/GHzytp/vedo/internal/anim"
	"github.com/GHzytp/vedo/internal/scene"
)

// BuildObjects constructs the declared primitives in declaration order and
// returns them keyed by name.
func BuildObjects(sc *Scenario) (map[string]scene.Object, []scene.Object, error) {
	byName := make(map[string]scene.Object, len(sc.Objects))
	var ordered []scene.Object

	for _, spec := range sc.Objects {
		if spec.Name == "" {
			return nil, nil, fmt.Errorf("object with shape %q has no name", spec.Shape)
		}
		if _, dup := byName[spec.Name]; dup {
			return nil, nil, fmt.Errorf("duplicate object name %q", spec.Name)
		}
		mesh, err := buildMesh(spec)
		if err != nil {
			return nil, nil, fmt.Errorf("object %q: %w", spec.Name, err)
		}
		byName[spec.Name] = mesh
		ordered = append(ordered, mesh)
	}
	return byName, ordered, nil
}

func buildMesh(spec ObjectSpec) (*scene.Mesh, error) {
	size := spec.Size
	if size <= 0 {
		size = 1.0
	}

	var mesh *scene.Mesh
	switch spec.Shape {
	case "cube":
		mesh = scene.NewCube(spec.Name, size)
	case "sphere":
		res := spec.Resolution
		if res == 0 {
			res = 12
		}
		mesh = scene.NewSphere(spec.Name, size/2, res)
	case "grid":
		res := spec.Resolution
		if res == 0 {
			res = 10
		}
		mesh = scene.NewGrid(spec.Name, size, size, res, res)
	case "line":
		from, err := vec3(spec.From, "from")
		if err != nil {
			return nil, err
		}
		to, err := vec3(spec.To, "to")
		if err != nil {
			return nil, err
		}
		res := spec.Resolution
		if res == 0 {
			res = 10
		}
		mesh = scene.NewLine(spec.Name, from, to, res)
	default:
		return nil, fmt.Errorf("unknown shape %q", spec.Shape)
	}

	if len(spec.Pos) > 0 {
		pos, err := vec3(spec.Pos, "pos")
		if err != nil {
			return nil, err
		}
		mesh.SetPos(pos)
	}
	if spec.Color != "" {
		c, err := scene.ParseColor(spec.Color)
		if err != nil {
			return nil, err
		}
		mesh.SetColor(c)
	}
	if spec.BackColor != "" {
		c, err := scene.ParseColor(spec.BackColor)
		if err != nil {
			return nil, err
		}
		mesh.SetBackColor(c)
	}
	if spec.LineColor != "" {
		c, err := scene.ParseColor(spec.LineColor)
		if err != nil {
			return nil, err
		}
		mesh.SetLineColor(c)
	}
	if spec.LineWidth != nil {
		mesh.SetLineWidth(*spec.LineWidth)
	}
	if spec.Alpha != nil {
		mesh.SetAlpha(*spec.Alpha)
	}
	mesh.SetWireframe(spec.Wireframe)
	return mesh, nil
}

// ApplySteps books every scenario step on the timeline in order. The first
// structural booking error stops the walk.
func ApplySteps(tl *anim.Timeline, sc *Scenario, objects map[string]scene.Object) error {
	for i, step := range sc.Steps {
		if err := applyStep(tl, step, objects); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Action, err)
		}
		if err := tl.Err(); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Action, err)
		}
	}
	return nil
}

func applyStep(tl *anim.Timeline, step Step, objects map[string]scene.Object) error {
	opts, err := stepOptions(step, objects)
	if err != nil {
		return err
	}

	switch step.Action {
	case "fade_in":
		tl.FadeIn(opts...)
	case "fade_out":
		tl.FadeOut(opts...)
	case "switch_on":
		tl.SwitchOn(opts...)
	case "switch_off":
		tl.SwitchOff(opts...)
	case "change_alpha":
		tl.ChangeAlphaBetween(step.Alpha1, step.Alpha2, opts...)
	case "change_color":
		c, err := scene.ParseColor(step.Color)
		if err != nil {
			return err
		}
		tl.ChangeColor(c, opts...)
	case "change_backcolor":
		c, err := scene.ParseColor(step.Color)
		if err != nil {
			return err
		}
		tl.ChangeBackColor(c, opts...)
	case "change_to_wireframe":
		tl.ChangeToWireframe(opts...)
	case "change_to_surface":
		tl.ChangeToSurface(opts...)
	case "change_line_width":
		tl.ChangeLineWidth(step.Width, opts...)
	case "change_line_color":
		c, err := scene.ParseColor(step.Color)
		if err != nil {
			return err
		}
		tl.ChangeLineColor(c, opts...)
	case "change_lighting":
		tl.ChangeLighting(step.Style, opts...)
	case "move":
		to, err := vec3(step.To, "to")
		if err != nil {
			return err
		}
		tl.Move(to, opts...)
	case "rotate":
		axis, err := parseAxis(step.Axis)
		if err != nil {
			return err
		}
		tl.Rotate(axis, step.Angle, opts...)
	case "scale":
		tl.Scale(step.Factor, opts...)
	case "mesh_erode":
		tl.MeshErode(step.Corner, opts...)
	default:
		return fmt.Errorf("unknown action %q", step.Action)
	}
	return nil
}

func stepOptions(step Step, objects map[string]scene.Object) ([]anim.Option, error) {
	var opts []anim.Option
	if len(step.Targets) > 0 {
		targets := make([]scene.Object, len(step.Targets))
		for i, name := range step.Targets {
			obj, ok := objects[name]
			if !ok {
				return nil, fmt.Errorf("unknown target %q", name)
			}
			targets[i] = obj
		}
		opts = append(opts, anim.Targets(targets...))
	}
	if step.Start != nil {
		opts = append(opts, anim.Start(*step.Start))
	}
	if step.Duration != nil {
		opts = append(opts, anim.Duration(*step.Duration))
	}
	// Move interprets style as its easing curve; lighting reads it from
	// the step directly.
	if step.Action == "move" && step.Style != "" {
		opts = append(opts, anim.Style(step.Style))
	}
	return opts, nil
}

func vec3(v []float64, field string) (scene.Vec3, error) {
	if len(v) != 3 {
		return scene.Vec3{}, fmt.Errorf("field %q needs 3 components, got %d", field, len(v))
	}
	return scene.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

func parseAxis(s string) (scene.Axis, error) {
	switch s {
	case "x", "X":
		return scene.AxisX, nil
	case "y", "Y":
		return scene.AxisY, nil
	case "z", "Z":
		return scene.AxisZ, nil
	}
	return 0, fmt.Errorf("unknown rotation axis %q", s)
}
