package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/infrastructure/snapshot"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/component"
	"github.com/bnema/dockyard/internal/ui/coordinator"
	"github.com/bnema/dockyard/internal/ui/layout"
)

// ConfigChangedMsg carries a reloaded configuration into the UI loop.
type ConfigChangedMsg struct {
	Config *config.Config
}

// ModelConfig holds the dependencies of Model.
type ModelConfig struct {
	Config *config.Config
	Theme  *styles.Theme
	Tracer port.DragTracer // Optional
	// Snapshots receives a scene after every workspace change (optional).
	Snapshots  *snapshot.Service
	GenerateID usecase.IDGenerator
}

// Model is the Bubble Tea model of the interactive dock workspace.
type Model struct {
	ctx       context.Context
	host      *Host
	workspace *coordinator.WorkspaceCoordinator
	drag      *coordinator.DragCoordinator
	snapshots *snapshot.Service

	theme *styles.Theme
	keys  styles.WorkspaceKeyMap
	help  help.Model

	// active receives motion and release until the gesture ends.
	active port.PointerHandler
	status string
}

// Compile-time interface compliance check
var _ tea.Model = (*Model)(nil)

// NewModel wires the docking engine to a terminal host.
func NewModel(ctx context.Context, cfg ModelConfig) (*Model, error) {
	ctx = logging.WithComponent(ctx, "tui")

	conf := cfg.Config
	if conf == nil {
		conf = config.DefaultConfig()
	}
	theme := cfg.Theme
	if theme == nil {
		theme = styles.NewTheme()
	}
	generateID := cfg.GenerateID
	if generateID == nil {
		generateID = uuid.NewString
	}

	edge, err := entity.ParseEdge(conf.Drag.InitialEdge)
	if err != nil {
		return nil, fmt.Errorf("invalid initial edge: %w", err)
	}

	m := &Model{
		ctx:       ctx,
		host:      NewHost(),
		snapshots: cfg.Snapshots,
		theme:     theme,
		keys:      styles.DefaultWorkspaceKeyMap(),
		help:      styles.NewStyledHelp(theme),
	}

	workspace, err := coordinator.NewWorkspaceCoordinator(ctx, coordinator.WorkspaceCoordinatorConfig{
		ManageUC:    usecase.NewManageDockAreasUseCase(generateID, nil),
		Layout:      LayoutOptions(conf),
		AreaStyle:   component.DefaultAreaStyle(),
		HotZoneSize: HotZoneSize(conf),
		InitialEdge: edge,
		OnChanged:   m.onWorkspaceChanged,
	})
	if err != nil {
		return nil, err
	}
	m.workspace = workspace

	m.drag = coordinator.NewDragCoordinator(ctx, coordinator.DragCoordinatorConfig{
		Surface:    m.host,
		Windows:    m.host,
		Workspace:  workspace,
		Tracer:     cfg.Tracer,
		Options:    DragOptions(conf),
		GenerateID: generateID,
	})

	return m, nil
}

// LayoutOptions maps the layout configuration to root layout options.
func LayoutOptions(cfg *config.Config) layout.Options {
	return layout.Options{
		Padding:           entity.UniformThickness(cfg.Layout.Padding),
		HorizontalSpacing: cfg.Layout.HorizontalSpacing,
		VerticalSpacing:   cfg.Layout.VerticalSpacing,
		LastChildFills:    cfg.Layout.LastChildFills,
	}
}

// HotZoneSize maps the hot-zone configuration to a zone size.
func HotZoneSize(cfg *config.Config) entity.Size {
	return entity.Size{Width: cfg.HotZone.Width, Height: cfg.HotZone.Height}
}

// DragOptions maps the drag configuration to drag options.
func DragOptions(cfg *config.Config) coordinator.DragOptions {
	return coordinator.DragOptions{
		Opacity:       cfg.Drag.Opacity,
		NewAreaExtent: cfg.Drag.NewAreaExtent,
	}
}

// Host returns the terminal host.
func (m *Model) Host() *Host {
	return m.host
}

// Workspace returns the workspace coordinator.
func (m *Model) Workspace() *coordinator.WorkspaceCoordinator {
	return m.workspace
}

// Drag returns the drag coordinator.
func (m *Model) Drag() *coordinator.DragCoordinator {
	return m.drag
}

// Scene returns the drawable state of the workspace.
func (m *Model) Scene() snapshot.Scene {
	return snapshot.NewScene(m.workspace.Workspace(), m.host.Bounds(), m.host.LayoutOrigin())
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("dockyard")
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.host.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.workspace.Resize(m.host.Bounds())
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.BlurMsg:
		// Losing focus mid-drag loses the pointer; land where it was last seen.
		if m.drag.IsDragging() {
			landing := m.drag.CaptureLost(m.ctx)
			m.active = nil
			m.status = "drag interrupted: " + landing.String()
		}
		return m, nil

	case ConfigChangedMsg:
		m.applyConfig(msg.Config)
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.AddPanel):
		panel, err := m.workspace.AddPanel(m.ctx)
		if err != nil {
			logging.FromContext(m.ctx).Error().Err(err).Msg("failed to add panel")
			m.status = "add panel failed"
			return nil
		}
		m.status = "added " + panel.Title
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	pos := ToSurface(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.press(pos)
		}
	case tea.MouseActionMotion:
		if m.active != nil {
			m.active.Move(m.ctx, pos)
		}
	case tea.MouseActionRelease:
		if m.active == nil {
			return
		}
		handler := m.active
		m.active = nil
		handler.Release(m.ctx, pos)
		m.status = ""
	}
}

// press starts a drag of the panel under pos. Windows are above the main surface.
func (m *Model) press(pos entity.Point) {
	if win := m.host.WindowAt(pos); win != nil {
		handler := win.PointerHandler()
		if handler != nil && handler.Press(m.ctx, win.PanelID(), pos) {
			m.active = handler
		}
		return
	}

	panel := m.panelAt(pos)
	if panel == nil {
		return
	}
	if m.drag.Press(m.ctx, panel.ID, pos) {
		m.active = m.drag
	}
}

func (m *Model) panelAt(pos entity.Point) *entity.Panel {
	origin := m.host.LayoutOrigin()
	for _, area := range m.workspace.Workspace().Areas() {
		for _, panel := range area.Panels() {
			if panel.RenderBounds().Offset(origin).Contains(pos) {
				return panel
			}
		}
	}
	return nil
}

func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.workspace.ApplyOptions(LayoutOptions(cfg), HotZoneSize(cfg))
	m.drag.SetOptions(DragOptions(cfg))
	m.status = "configuration reloaded"
	logging.FromContext(m.ctx).Info().Msg("applied reloaded configuration")
}

func (m *Model) onWorkspaceChanged() {
	if m.snapshots == nil || m.workspace == nil {
		return
	}
	m.snapshots.MarkDirty(m.Scene())
}

// View implements tea.Model.
func (m *Model) View() string {
	cols, rows := m.host.Size()
	if cols == 0 || rows == 0 {
		return ""
	}

	renderer := newSceneRenderer(m.theme, cols, max(rows-statusRows, 0))
	canvas := renderer.draw(m.Scene(), m.host.MainColumns())
	return canvas.Render() + "\n" + m.statusLine()
}

func (m *Model) statusLine() string {
	ws := m.workspace.Workspace()
	counts := fmt.Sprintf("areas %d · panels %d · windows %d",
		ws.AreaCount(), len(ws.AllPanels()), len(ws.DetachedWindows()))
	if m.status != "" {
		counts = m.status + " · " + counts
	}
	return m.help.View(m.keys) + "  " + m.theme.StatusBar.Render(counts)
}
