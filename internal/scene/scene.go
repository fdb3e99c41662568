package scene

// Scene is the ordered set of objects to draw. Add is idempotent on object
// identity so transition declarations can re-register targets freely.
type Scene struct {
	objects []Object
}

func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) Add(obj Object) {
	for _, o := range s.objects {
		if o == obj {
			return
		}
	}
	s.objects = append(s.objects, obj)
}

func (s *Scene) Remove(obj Object) {
	for i, o := range s.objects {
		if o == obj {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return
		}
	}
}

// Objects returns the draw-ordered object list. The slice is shared; callers
// must not mutate it.
func (s *Scene) Objects() []Object {
	return s.objects
}

func (s *Scene) Len() int { return len(s.objects) }
