// Package buildinfo carries the values stamped into the binary at link time.
package buildinfo

var (
	BuildTag = "v0.1.0"
	Name     = "octree"
	Time     = ""
)

type buildinfo struct{}

func (buildinfo) Tag() string {
	return BuildTag
}

func (buildinfo) Name() string {
	return Name
}

func (buildinfo) Time() string {
	return Time
}

var Info buildinfo
