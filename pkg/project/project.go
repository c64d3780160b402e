package project

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"testing/fstest"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mybatis-tools/mapperfmt/pkg/config"
	"github.com/mybatis-tools/mapperfmt/pkg/consts"
	"github.com/mybatis-tools/mapperfmt/pkg/dialect"
)

var (
	//go:embed embed/mapperfmt.yaml
	defaultConfig []byte

	//go:embed embed/example.xml
	defaultMapper []byte

	image = fstest.MapFS{
		"mappers":             {Mode: os.ModeDir | 0o755},
		"mappers/example.xml": {Data: defaultMapper},
		"mapperfmt.yaml":      {Data: defaultConfig},
	}
)

type (
	// InitOptions contains options for project initialization
	InitOptions struct {
		// Dialect selects the SQL dialect written to the generated
		// configuration. If empty, the default dialect is kept.
		Dialect string
	}

	Project struct {
		root   string
		config *config.Config
	}
)

// New creates a new Project instance rooted at the given directory. The path
// should point to an existing directory.
//
// Example:
//
//	p := project.New("/path/to/my/mappers")
//
//	if err := p.Initialize(project.InitOptions{}); err != nil {
//		log.Fatal(err)
//	}
//
//	mappers, err := p.Mappers()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("Found %d mapper files\n", len(mappers))
func New(path string) *Project {
	return &Project{root: path}
}

// Root returns the project root directory.
func (p *Project) Root() string {
	return p.root
}

// Config returns the project configuration loaded by Initialize, or nil when
// the project has not been initialized.
func (p *Project) Config() *config.Config {
	return p.config
}

// Initialize sets up the project directory structure and loads the
// configuration. This method is idempotent - it will only create missing
// files, preserving any existing content. It creates a mapperfmt.yaml and a
// mappers/ directory seeded with an example mapper.
//
// Example:
//
//	p := project.New("/path/to/my/project")
//	if err := p.Initialize(project.InitOptions{Dialect: "postgresql"}); err != nil {
//		log.Fatal("Failed to initialize project:", err)
//	}
func (p *Project) Initialize(options InitOptions) error {
	if err := p.ensureDirectory(); err != nil {
		return err
	}

	// Walk the embedded image and create whatever is missing
	for path, entry := range image {
		fullPath := filepath.Join(p.root, path)

		if _, err := os.Stat(fullPath); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return errors.Wrapf(err, "failed to stat %s", fullPath)
		}

		if entry.Mode.IsDir() {
			if err := os.MkdirAll(fullPath, entry.Mode.Perm()); err != nil {
				return errors.Wrapf(err, "failed to create directory %s", fullPath)
			}

			continue
		}

		if err := os.MkdirAll(filepath.Dir(fullPath), consts.ModeDir); err != nil {
			return errors.Wrapf(err, "failed to create parent directory %s", filepath.Dir(fullPath))
		}

		if err := os.WriteFile(fullPath, entry.Data, consts.ModeFile); err != nil {
			return errors.Wrapf(err, "failed to write file %s", fullPath)
		}
	}

	configPath := filepath.Join(p.root, consts.ConfigFile)

	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return errors.Wrapf(err, "failed to load %s", consts.ConfigFile)
	}

	if options.Dialect != "" {
		cfg.Dialect = dialect.For(options.Dialect).Name()

		f, err := os.Create(configPath)
		if err != nil {
			return errors.Wrapf(err, "failed to open config file for writing: %s", configPath)
		}
		defer func() { _ = f.Close() }()

		enc := yaml.NewEncoder(f)
		if err := enc.Encode(cfg); err != nil {
			return errors.Wrap(err, "failed to write updated config")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, "failed to close yaml encoder")
		}
	}

	p.config = cfg

	return nil
}

// Mappers returns the paths of all mapper files under the project root,
// sorted lexically. Hidden directories are not descended into.
func (p *Project) Mappers() ([]string, error) {
	return CollectMappers(p.root)
}

// CollectMappers walks root and returns the paths of all mapper files below
// it, sorted lexically.
func CollectMappers(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}

			return nil
		}

		if filepath.Ext(path) == consts.MapperExt {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk %s", root)
	}

	return files, nil
}

func (p *Project) ensureDirectory() error {
	dir, err := os.Stat(p.root)
	if err != nil {
		return errors.Wrapf(err, "failed to stat dir: %s", p.root)
	}

	if !dir.IsDir() {
		return errors.Errorf("%s is not a directory", p.root)
	}

	return nil
}
