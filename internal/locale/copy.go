// Package locale carries the bilingual interface copy. Every string a
// user sees in the wizard lives here, keyed by locale, so the views
// stay free of literals.
package locale

import (
	"fmt"

	"selftalk/internal/domain"
	"selftalk/internal/recorder"
)

// Copy is the full set of interface strings for one locale.
type Copy struct {
	// NextLabels holds the advance-button label per wizard step.
	NextLabels []string

	DayLabelFormat string
	Affirmation    string
	Reason         string
	Action         string
	Recording      string
	PromptsTitle   string
	PromptLabels   map[string]string
	PromptDefault  string
	Tags           string
	Done           string
	Repetitions    string
	Expand         string
	Collapse       string

	LearningHeading string
	NoResources     string
	ReminderLabel   string
	ReminderOff     string
	ReminderOn      string

	BadgeComingSoon string
	BadgeCustom     string

	StepPathwayTitle  string
	StepTemplateTitle string
	PathwayBreak      string
	PathwayBuild      string

	RecorderStatusText map[recorder.StatusSignal]string
	RecorderStart      string
	RecorderStop       string
	RecorderSave       string
}

var copies = map[domain.Locale]Copy{
	domain.LocaleZH: {
		NextLabels:     []string{"下一步", "查看计划", "开始践行"},
		DayLabelFormat: "第 %d 天",
		Affirmation:    "今日自我对话",
		Reason:         "坚持理由",
		Action:         "今日行动",
		Recording:      "录音提示",
		PromptsTitle:   "提醒",
		PromptLabels: map[string]string{
			"morning":   "早晨提醒",
			"afternoon": "午间提示",
			"evening":   "夜间回顾",
		},
		PromptDefault: "提醒",
		Tags:          "关键词",
		Done:          "完成今天的练习",
		Repetitions:   "今天重复了几次？",
		Expand:        "展开",
		Collapse:      "收起",

		LearningHeading: "延伸阅读",
		NoResources:     "我们正在准备更多配套文章，敬请期待。",
		ReminderLabel:   "每日提醒",
		ReminderOff:     "我们会在本地保存提醒标记，并引导你把练习写进日历或待办。",
		ReminderOn:      "已为你开启每日提醒，建议立刻在日历或提醒工具中设定时间。",

		BadgeComingSoon: "即将上线",
		BadgeCustom:     "自定义",

		StepPathwayTitle:  "你想从哪里开始？",
		StepTemplateTitle: "选择一个练习模板",
		PathwayBreak:      "改掉一个坏习惯",
		PathwayBuild:      "养成一个好习惯",

		RecorderStatusText: map[recorder.StatusSignal]string{
			recorder.StatusIdle:        "准备就绪：点击“开始录音”练习今天的脚本。",
			recorder.StatusRecording:   "录音中… 完成后按“停止”，尽量保持语速稳定。",
			recorder.StatusProcessing:  "正在处理录音…几秒后即可播放或下载。",
			recorder.StatusReady:       "录音完成！播放确认语气，或保存音频以便复习。",
			recorder.StatusPermission:  "请允许使用麦克风，我们不会上传音频。",
			recorder.StatusUnsupported: "抱歉，当前设备暂不支持录音功能。",
			recorder.StatusError:       "录音遇到问题，请重试。",
			recorder.StatusInactive:    "选择一个模板并生成计划后，就能在这里练习录音。",
		},
		RecorderStart: "开始录音",
		RecorderStop:  "停止",
		RecorderSave:  "下载录音",
	},
	domain.LocaleEN: {
		NextLabels:     []string{"Next Step", "See Plan", "Start Practice"},
		DayLabelFormat: "Day %d",
		Affirmation:    "Self-talk focus",
		Reason:         "Why it matters",
		Action:         "Action for today",
		Recording:      "Recording tip",
		PromptsTitle:   "Prompts",
		PromptLabels: map[string]string{
			"morning":   "Morning prompt",
			"afternoon": "Afternoon prompt",
			"evening":   "Evening reflection",
		},
		PromptDefault: "Reminder",
		Tags:          "Tags",
		Done:          "I completed today’s practice",
		Repetitions:   "How many repetitions today?",
		Expand:        "Expand",
		Collapse:      "Collapse",

		LearningHeading: "Further reading",
		NoResources:     "More resources are on the way. Stay tuned.",
		ReminderLabel:   "Daily reminder",
		ReminderOff:     "We store this preference locally and prompt you to add calendar or to-do reminders.",
		ReminderOn:      "Daily reminder saved locally. Add it to your calendar or to-do app right away.",

		BadgeComingSoon: "Coming soon",
		BadgeCustom:     "Custom",

		StepPathwayTitle:  "Where do you want to start?",
		StepTemplateTitle: "Pick a practice template",
		PathwayBreak:      "Break a bad habit",
		PathwayBuild:      "Build a good habit",

		RecorderStatusText: map[recorder.StatusSignal]string{
			recorder.StatusIdle:        "Ready to go: press “Start recording” to rehearse today’s script.",
			recorder.StatusRecording:   "Recording… speak with intention, then hit “Stop” when you’re done.",
			recorder.StatusProcessing:  "Processing your audio… you can replay or download in a moment.",
			recorder.StatusReady:       "All set! Replay the clip to check your tone or download it for later.",
			recorder.StatusPermission:  "Please allow microphone access. Nothing leaves your device.",
			recorder.StatusUnsupported: "Recording is not supported on this device.",
			recorder.StatusError:       "Something went wrong while recording. Give it another try.",
			recorder.StatusInactive:    "Generate your daily plan first, then the recorder will be ready here.",
		},
		RecorderStart: "Start recording",
		RecorderStop:  "Stop",
		RecorderSave:  "Download audio",
	},
}

// For returns the copy set for a locale, falling back to English for
// anything unknown.
func For(loc domain.Locale) Copy {
	if c, ok := copies[loc]; ok {
		return c
	}
	return copies[domain.LocaleEN]
}

// DayLabel renders the localized day heading.
func (c Copy) DayLabel(day int) string {
	return fmt.Sprintf(c.DayLabelFormat, day)
}

// NextLabel returns the advance-button label for a 1-based wizard
// step, clamping past the final step.
func (c Copy) NextLabel(step int) string {
	if len(c.NextLabels) == 0 {
		return ""
	}
	if step < 1 {
		step = 1
	}
	if step > len(c.NextLabels) {
		step = len(c.NextLabels)
	}
	return c.NextLabels[step-1]
}

// PromptLabel maps a prompt slot to its localized label.
func (c Copy) PromptLabel(slot string) string {
	if label, ok := c.PromptLabels[slot]; ok {
		return label
	}
	return c.PromptDefault
}

// PathwayLabel maps a change-pathway id to its localized label,
// falling back to the raw id for unknown pathways.
func (c Copy) PathwayLabel(pathway string) string {
	switch pathway {
	case "break-bad-habit":
		return c.PathwayBreak
	case "build-good-habit":
		return c.PathwayBuild
	}
	return pathway
}

// RecorderStatus maps a status signal to its localized message.
func (c Copy) RecorderStatus(signal recorder.StatusSignal) string {
	return c.RecorderStatusText[signal]
}

// TemplateBadge returns the localized badge for a template status, or
// an empty string for ready templates.
func (c Copy) TemplateBadge(status string) string {
	switch status {
	case domain.TemplateStatusComingSoon:
		return c.BadgeComingSoon
	case domain.TemplateStatusCustom:
		return c.BadgeCustom
	}
	return ""
}
