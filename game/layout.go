package game

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

var ErrUnknownLayout = errors.New("unknown layout")

// ParseLayout reads a board drawn with '%' walls, '.' food, 'o' capsules,
// 'P' Pacman and 'G' ghosts. Ghosts are numbered in row-major order.
func ParseLayout(text string) (*GameState, error) {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	height := len(lines)
	width := 0
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
		if len(lines[i]) > width {
			width = len(lines[i])
		}
	}
	if width == 0 {
		return nil, fmt.Errorf("failed to parse layout: empty board")
	}

	walls := NewWalls(width, height)
	var (
		pacman   *Position
		food     []Position
		capsules []Position
		ghosts   []Position
	)
	for y, line := range lines {
		for x, c := range line {
			p := Position{X: x, Y: y}
			switch c {
			case '%':
				walls.Set(p)
			case '.':
				food = append(food, p)
			case 'o':
				capsules = append(capsules, p)
			case 'P':
				if pacman != nil {
					return nil, fmt.Errorf("failed to parse layout: second Pacman at %v", p)
				}
				pacman = &p
			case 'G':
				ghosts = append(ghosts, p)
			case ' ':
			default:
				return nil, fmt.Errorf("failed to parse layout: unexpected %q at %v", c, p)
			}
		}
	}
	if pacman == nil {
		return nil, fmt.Errorf("failed to parse layout: no Pacman")
	}

	return NewGameState(walls, *pacman, food, capsules, ghosts), nil
}

// LoadLayout parses a layout file.
func LoadLayout(path string) (*GameState, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	return ParseLayout(string(text))
}

// Layout returns a fresh initial state of a built-in layout.
func Layout(name string) (*GameState, error) {
	text, ok := layouts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLayout, name)
	}
	return ParseLayout(text)
}

// Open returns a built-in layout by name, or otherwise parses the layout file
// at that path.
func Open(name string) (*GameState, error) {
	if _, ok := layouts[name]; ok {
		return Layout(name)
	}
	if _, err := os.Stat(name); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLayout, name)
	}
	return LoadLayout(name)
}

// LayoutNames lists the built-in layouts alphabetically.
func LayoutNames() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var layouts = map[string]string{
	"testClassic": `
%%%%%
% . %
%.G.%
% . %
%. .%
%   %
%  .%
%   %
%P .%
%%%%%
`,
	"minimaxClassic": `
%%%%%%%%%
%.P    G%
% %.%G%%%
%G    %%%
%%%%%%%%%
`,
	"trappedClassic": `
%%%%%%%%
%   P G%
%G%%%%%%
%....  %
%%%%%%%%
`,
	"smallClassic": `
%%%%%%%%%%%%%%%%%%%%
%......%G  G%......%
%.%%...%%  %%...%%.%
%.%o.%........%.o%.%
%.%%.%.%%%%%%.%.%%.%
%........P.........%
%%%%%%%%%%%%%%%%%%%%
`,
	"openClassic": `
%%%%%%%%%%%%%%%%%%%%%%%%%
%.. P   ....      ....  %
%..  ...  ...  ...  ... %
%..  ...  ...  ...  ... %
%..    ....      .... G %
%..  ...  ...  ...  ... %
%..  ...  ...  ...  ... %
%..    ....      ....  o%
%%%%%%%%%%%%%%%%%%%%%%%%%
`,
}
