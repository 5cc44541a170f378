package cli

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"selftalk/internal/domain"
	"selftalk/internal/locale"
	"selftalk/internal/recorder"
)

// stepMax is the number of wizard steps: pathway, template, plan.
const stepMax = 3

// saveTimeout bounds the artifact write plus history insert.
const saveTimeout = 5 * time.Second

type metadataLoadedMsg struct{ meta *domain.HabitMetadata }
type scriptLoadedMsg struct{ doc *domain.PlanDocument }
type recorderChangedMsg struct{}
type artifactSavedMsg struct {
	path string
	err  error
	// historyErr reports a failed history insert after a successful
	// file write.
	historyErr error
}

// programNotifier forwards capture device events into the bubbletea
// message loop. The program is attached after construction because
// tea.NewProgram needs the model first.
type programNotifier struct {
	mu      sync.Mutex
	program *tea.Program
}

func (n *programNotifier) attach(p *tea.Program) {
	n.mu.Lock()
	n.program = p
	n.mu.Unlock()
}

func (n *programNotifier) send(msg tea.Msg) {
	n.mu.Lock()
	p := n.program
	n.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// practiceModel is the root bubbletea model for the practice wizard:
// a three-step flow from pathway choice to the day-by-day plan with
// progress tracking and the rehearsal recorder.
type practiceModel struct {
	app  *App
	copy locale.Copy
	keys planKeyMap

	step   int
	width  int
	height int

	meta *domain.HabitMetadata
	// sel is heap-shared across model copies so huh value bindings
	// survive bubbletea's value semantics.
	sel  *wizardSelection
	form *huh.Form

	scriptID string
	script   *domain.PlanDocument
	progress *domain.ProgressRecord

	cursor   int
	expanded map[int]bool

	recorder  *recorder.Controller
	savedPath string
	notice    string

	notifier *programNotifier
	quitting bool
}

// wizardSelection carries the huh form results for steps 1 and 2.
type wizardSelection struct {
	pathway string
	habitID string
}

func newPracticeModel(app *App) practiceModel {
	cp := locale.For(app.Locale)
	notifier := &programNotifier{}
	// One recorder per locale for the life of the wizard. Entering and
	// leaving the plan step only flips it active, never rebuilds it.
	rec := recorder.NewController(app.Locale, app.Gateway)
	rec.SetOnChange(func() { notifier.send(recorderChangedMsg{}) })
	return practiceModel{
		app:      app,
		copy:     cp,
		keys:     newPlanKeyMap(cp),
		step:     1,
		sel:      &wizardSelection{},
		expanded: make(map[int]bool),
		recorder: rec,
		notifier: notifier,
	}
}

// attach connects the running program so device events repaint the UI.
func (m practiceModel) attach(p *tea.Program) {
	m.notifier.attach(p)
}

func (m practiceModel) Init() tea.Cmd {
	return func() tea.Msg {
		return metadataLoadedMsg{meta: m.app.Plans.Metadata(context.Background())}
	}
}

func (m practiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case metadataLoadedMsg:
		m.meta = msg.meta
		if m.meta == nil || len(m.meta.Pathways()) == 0 {
			m.notice = m.copy.NoResources
			return m, nil
		}
		m.form = m.pathwayForm()
		return m, m.form.Init()

	case scriptLoadedMsg:
		if msg.doc == nil {
			m.notice = m.copy.NoResources
			m.form = m.templateForm()
			if m.form == nil {
				return m, nil
			}
			return m, m.form.Init()
		}
		return m.enterPlan(msg.doc)

	case recorderChangedMsg:
		return m, nil

	case artifactSavedMsg:
		if msg.err != nil {
			m.notice = msg.err.Error()
			return m, nil
		}
		m.savedPath = msg.path
		if msg.historyErr != nil {
			m.notice = "history: " + msg.historyErr.Error()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forwardToForm(msg)
}

func (m practiceModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}
	if key.Matches(msg, m.keys.Back) {
		return m.back()
	}
	if m.step < stepMax {
		return m.forwardToForm(msg)
	}
	return m.handlePlanKey(msg)
}

func (m practiceModel) quit() (tea.Model, tea.Cmd) {
	m.recorder.SetActive(false)
	m.quitting = true
	return m, tea.Quit
}

// back steps the wizard one screen towards the pathway choice.
func (m practiceModel) back() (tea.Model, tea.Cmd) {
	switch m.step {
	case 2:
		m.step = 1
		m.notice = ""
		m.form = m.pathwayForm()
		if m.form == nil {
			return m, nil
		}
		return m, m.form.Init()
	case stepMax:
		// Leaving the plan deactivates the recorder and discards any
		// unsaved take.
		m.recorder.SetActive(false)
		m.script = nil
		m.progress = nil
		m.savedPath = ""
		m.notice = ""
		m.step = 2
		m.form = m.templateForm()
		if m.form == nil {
			return m, nil
		}
		return m, m.form.Init()
	}
	return m, nil
}

// forwardToForm routes a message into the active huh form and watches
// for completion to advance the wizard.
func (m practiceModel) forwardToForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	switch m.step {
	case 1:
		m.step = 2
		m.notice = ""
		m.form = m.templateForm()
		if m.form == nil {
			m.step = 1
			m.notice = m.copy.NoResources
			m.form = m.pathwayForm()
		}
		if m.form == nil {
			return m, cmd
		}
		return m, tea.Batch(cmd, m.form.Init())
	case 2:
		m.form = nil
		tpl := m.meta.TemplateByID(m.sel.habitID)
		if tpl == nil || !tpl.Ready() {
			m.notice = m.copy.TemplateBadge(domain.TemplateStatusComingSoon)
			m.form = m.templateForm()
			return m, tea.Batch(cmd, m.form.Init())
		}
		m.scriptID = tpl.Script
		return m, tea.Batch(cmd, m.loadScriptCmd())
	}
	return m, cmd
}

func (m practiceModel) loadScriptCmd() tea.Cmd {
	id := m.scriptID
	return func() tea.Msg {
		return scriptLoadedMsg{doc: m.app.Plans.Script(context.Background(), id)}
	}
}

// enterPlan switches to the plan step and arms the recorder.
func (m practiceModel) enterPlan(doc *domain.PlanDocument) (tea.Model, tea.Cmd) {
	m.script = doc
	m.scriptID = doc.ID
	m.progress = m.app.Progress.Get(context.Background(), doc.ID)
	m.cursor = 0
	m.expanded = make(map[int]bool)
	m.savedPath = ""
	m.notice = ""
	m.step = stepMax

	m.recorder.SetActive(true)
	return m, nil
}

func (m practiceModel) handlePlanKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.script == nil {
		return m, nil
	}
	day := 0
	if m.cursor < len(m.script.Days) {
		day = m.script.Days[m.cursor].Day
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.script.Days)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		completed := !m.progress.Days[day].Completed
		m.progress = m.app.Progress.UpdateDay(context.Background(), m.scriptID, day, domain.DayUpdate{Completed: &completed})
		return m, nil

	case key.Matches(msg, m.keys.Digits):
		n := int(msg.String()[0] - '0')
		m.progress = m.app.Progress.UpdateDay(context.Background(), m.scriptID, day, domain.DayUpdate{Repetitions: &n})
		return m, nil

	case key.Matches(msg, m.keys.More):
		n := m.repetitionsFor(day) + 1
		m.progress = m.app.Progress.UpdateDay(context.Background(), m.scriptID, day, domain.DayUpdate{Repetitions: &n})
		return m, nil

	case key.Matches(msg, m.keys.Less):
		n := m.repetitionsFor(day) - 1
		m.progress = m.app.Progress.UpdateDay(context.Background(), m.scriptID, day, domain.DayUpdate{Repetitions: &n})
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.progress = m.app.Progress.UpdateDay(context.Background(), m.scriptID, day, domain.DayUpdate{ClearRepetitions: true})
		return m, nil

	case key.Matches(msg, m.keys.Reminder):
		m.progress = m.app.Progress.SetReminder(context.Background(), m.scriptID, !m.progress.Reminder)
		return m, nil

	case key.Matches(msg, m.keys.Expand):
		m.expanded[day] = !m.expanded[day]
		return m, nil

	case key.Matches(msg, m.keys.Record):
		return m, m.recorderStartCmd()

	case key.Matches(msg, m.keys.Stop):
		return m, m.recorderStopCmd()

	case key.Matches(msg, m.keys.Save):
		return m, m.saveArtifactCmd()
	}

	return m, nil
}

func (m practiceModel) repetitionsFor(day int) int {
	if entry, ok := m.progress.Days[day]; ok && entry.Repetitions != nil {
		return *entry.Repetitions
	}
	return 0
}

func (m practiceModel) recorderStartCmd() tea.Cmd {
	ctrl := m.recorder
	if ctrl == nil {
		return nil
	}
	return func() tea.Msg {
		ctrl.Start(context.Background())
		return recorderChangedMsg{}
	}
}

func (m practiceModel) recorderStopCmd() tea.Cmd {
	ctrl := m.recorder
	if ctrl == nil {
		return nil
	}
	return func() tea.Msg {
		ctrl.Stop()
		return recorderChangedMsg{}
	}
}

// saveArtifactCmd writes the finished take to the recordings directory
// and appends it to the rehearsal history.
func (m practiceModel) saveArtifactCmd() tea.Cmd {
	artifact := m.recorder.Artifact()
	if artifact == nil {
		return nil
	}
	app := m.app
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		path, err := artifact.SaveTo(app.RecordingsDir)
		if err != nil {
			return artifactSavedMsg{err: err}
		}
		var historyErr error
		if app.Recordings != nil {
			historyErr = app.Recordings.Log(ctx, &domain.RecordingLog{
				ID:        uuid.New().String(),
				Locale:    artifact.Locale,
				Filename:  artifact.Filename,
				MimeType:  artifact.MimeType,
				ByteSize:  len(artifact.Data),
				CreatedAt: artifact.CreatedAt,
			})
		}
		return artifactSavedMsg{path: path, historyErr: historyErr}
	}
}
