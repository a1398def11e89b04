package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/profile-header/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	divisorEntry   *widget.Entry
	delayEntry     *widget.Entry
	quietEntry     *widget.Entry
	snapCheck      *widget.Check
	debugCheck     *widget.Check
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog; onSaved runs after the settings are stored
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.divisorEntry = widget.NewEntry()
	sd.divisorEntry.SetPlaceHolder(strconv.FormatFloat(config.MinScaleDivisor, 'f', -1, 64) + "-" +
		strconv.FormatFloat(config.MaxScaleDivisor, 'f', -1, 64))

	sd.delayEntry = widget.NewEntry()
	sd.delayEntry.SetPlaceHolder(strconv.Itoa(config.MinSettleDelayMs) + "-" + strconv.Itoa(config.MaxSettleDelayMs))

	sd.quietEntry = widget.NewEntry()
	sd.quietEntry.SetPlaceHolder(strconv.Itoa(config.MinSettleQuietMs) + "-" + strconv.Itoa(config.MaxSettleQuietMs))

	sd.snapCheck = widget.NewCheck(text(KeySnapEnabled), nil)
	sd.debugCheck = widget.NewCheck(text(KeyDebugOverlay), nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = text(KeyLanguage)

	form := container.NewVBox(
		widget.NewLabel(text(KeyHeaderSettings)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyScaleDivisor)+":"),
		sd.divisorEntry,

		widget.NewLabel(text(KeySettleDelay)+":"),
		sd.delayEntry,

		widget.NewLabel(text(KeySettleQuiet)+":"),
		sd.quietEntry,

		sd.snapCheck,
		sd.debugCheck,

		widget.NewSeparator(),
		widget.NewLabel(text(KeyInterface)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(400, 480))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.divisorEntry.SetText(strconv.FormatFloat(sd.settings.GetScaleDivisor(), 'f', -1, 64))
	sd.delayEntry.SetText(strconv.FormatInt(sd.settings.GetSettleDelay().Milliseconds(), 10))
	sd.quietEntry.SetText(strconv.FormatInt(sd.settings.GetSettleQuiet().Milliseconds(), 10))
	sd.snapCheck.SetChecked(sd.settings.GetSnapEnabled())
	sd.debugCheck.SetChecked(sd.settings.GetDebugOverlay())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	previousLanguage := sd.settings.GetLanguage()
	sd.save()

	if sd.onSaved != nil {
		sd.onSaved()
	}

	// Show confirmation
	message := sd.localization.GetText(KeySettingsSaved)
	if sd.settings.GetLanguage() != previousLanguage {
		message += "\n" + sd.localization.GetText(KeyRestartNeeded)
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), message, sd.window)
}

// save validates the form and stores every valid value; setters clamp to their limits
func (sd *SettingsDialog) save() {
	if divisor, err := strconv.ParseFloat(sd.divisorEntry.Text, 64); err == nil {
		sd.settings.SetScaleDivisor(divisor)
	}

	if delay, err := strconv.Atoi(sd.delayEntry.Text); err == nil {
		sd.settings.SetSettleDelay(delay)
	}

	if quiet, err := strconv.Atoi(sd.quietEntry.Text); err == nil {
		sd.settings.SetSettleQuiet(quiet)
	}

	sd.settings.SetSnapEnabled(sd.snapCheck.Checked)
	sd.settings.SetDebugOverlay(sd.debugCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}
