package ui

import (
	"context"
	"fmt"
	"io"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/desirely/creator-desk/internal/config"
	"github.com/desirely/creator-desk/internal/model"
	"github.com/desirely/creator-desk/internal/notify"
	"github.com/desirely/creator-desk/internal/platform"
	"github.com/desirely/creator-desk/internal/store"
	"github.com/desirely/creator-desk/internal/upload"
)

// ImageFetcher retrieves stored image bytes by id.
type ImageFetcher interface {
	FetchImage(ctx context.Context, imageID string) ([]byte, error)
}

// Supported image extensions for the file picker.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif"}

// RootUI is the main UI shell. All service callbacks arrive on worker
// goroutines and are marshalled onto the Fyne thread with fyne.Do before any
// widget is touched.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	store        *store.Service
	queue        *notify.Queue
	pipeline     *upload.Pipeline
	images       ImageFetcher
	controller   *Controller
	settings     *config.Settings
	localization *Localization
	log          zerolog.Logger

	// List screen
	searchEntry *widget.Entry
	statusLabel *widget.Label
	creatorList *widget.List
	emptyLabel  *widget.Label

	filteredMu sync.Mutex
	filtered   []model.Creator

	// Card registry: widget.List recycles canvas objects, this maps them
	// back to their card.
	cardsMu sync.Mutex
	cards   map[fyne.CanvasObject]*CreatorCard

	// Thumbnail cache for list avatars and the edit screen.
	thumbsMu      sync.Mutex
	thumbs        map[string][]byte
	thumbsPending map[string]bool

	// Edit screen upload widgets, nil off the edit screen.
	uploadStatus *widget.Label
	previewPane  *fyne.Container

	listScreen *fyne.Container
	content    *fyne.Container
	toasts     *ToastPanel
}

// NewRootUI creates and initializes the main UI.
func NewRootUI(window fyne.Window, app fyne.App, storeSvc *store.Service, queue *notify.Queue,
	pipeline *upload.Pipeline, images ImageFetcher, logger zerolog.Logger) *RootUI {

	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:        window,
		app:           app,
		store:         storeSvc,
		queue:         queue,
		pipeline:      pipeline,
		images:        images,
		settings:      settings,
		localization:  localization,
		log:           logger.With().Str("component", "ui").Logger(),
		cards:         make(map[fyne.CanvasObject]*CreatorCard),
		thumbs:        make(map[string][]byte),
		thumbsPending: make(map[string]bool),
	}
	ui.controller = NewController(storeSvc)

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.Resize(fyne.NewSize(WindowDefaultWidth, WindowDefaultHeight))

	ui.store.SetUpdateCallback(ui.onStoreUpdate)
	ui.queue.SetUpdateCallback(ui.onQueueUpdate)
	ui.pipeline.SetUpdateCallback(ui.onPipelineUpdate)

	ui.setupUI()
	return ui
}

// Start triggers the initial collection fetch.
func (ui *RootUI) Start() {
	go func() {
		_ = ui.store.List(context.Background())
	}()
}

// setupUI creates and arranges all UI components.
func (ui *RootUI) setupUI() {
	ui.createMenu()
	ui.listScreen = ui.buildListScreen()

	ui.content = container.NewStack(ui.listScreen)

	ui.toasts = NewToastPanel(ui.queue.Dismiss)
	toastOverlay := container.NewBorder(
		container.NewPadded(container.NewHBox(layout.NewSpacer(), ui.toasts.Container())),
		nil, nil, nil,
	)

	ui.window.SetContent(container.NewStack(ui.content, toastOverlay))
}

// createMenu creates the application menu.
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	refreshItem := fyne.NewMenuItem(ui.localization.GetText(KeyRefresh), func() {
		go func() {
			_ = ui.store.List(context.Background())
		}()
	})

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // capture for closure
		item := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			item.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, item)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyAppTitle), settingsItem, refreshItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// buildListScreen assembles the creator list with its search box.
func (ui *RootUI) buildListScreen() *fyne.Container {
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearch))
	ui.searchEntry.OnChanged = func(string) {
		ui.applyFilter()
		ui.creatorList.Refresh()
		ui.updateEmptyLabel()
	}

	registerBtn := widget.NewButton(ui.localization.GetText(KeyRegister), ui.onRegisterClick)
	registerBtn.Importance = widget.HighImportance

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Hide()

	ui.emptyLabel = widget.NewLabel(ui.localization.GetText(KeyNoCreators))
	ui.emptyLabel.Alignment = fyne.TextAlignCenter
	ui.emptyLabel.Hide()

	ui.creatorList = widget.NewList(
		func() int {
			ui.filteredMu.Lock()
			defer ui.filteredMu.Unlock()
			return len(ui.filtered)
		},
		func() fyne.CanvasObject { return ui.createCardItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateCardItem(id, obj) },
	)

	top := container.NewVBox(
		container.NewBorder(nil, nil, nil, registerBtn, ui.searchEntry),
		ui.statusLabel,
	)

	return container.NewBorder(top, nil, nil, nil,
		container.NewStack(ui.creatorList, ui.emptyLabel))
}

// createCardItem builds a recyclable list row and registers it.
func (ui *RootUI) createCardItem() fyne.CanvasObject {
	card := NewCreatorCard(ui.localization, ui.onEditClick, ui.onDeleteClick)
	obj := card.Container()

	ui.cardsMu.Lock()
	ui.cards[obj] = card
	ui.cardsMu.Unlock()

	return obj
}

// updateCardItem fills a recycled row with the creator at the given index.
func (ui *RootUI) updateCardItem(id widget.ListItemID, obj fyne.CanvasObject) {
	ui.cardsMu.Lock()
	card := ui.cards[obj]
	ui.cardsMu.Unlock()
	if card == nil {
		return
	}

	ui.filteredMu.Lock()
	if id < 0 || id >= len(ui.filtered) {
		ui.filteredMu.Unlock()
		return
	}
	creator := ui.filtered[id]
	ui.filteredMu.Unlock()

	card.Update(creator, ui.thumbnailFor(creator))
}

// thumbnailFor returns the cached avatar thumbnail, kicking off a background
// fetch on a cache miss.
func (ui *RootUI) thumbnailFor(creator model.Creator) []byte {
	if !creator.HasImage() {
		return nil
	}

	ui.thumbsMu.Lock()
	thumb, cached := ui.thumbs[creator.ImageID]
	pending := ui.thumbsPending[creator.ImageID]
	if !cached && !pending {
		ui.thumbsPending[creator.ImageID] = true
	}
	ui.thumbsMu.Unlock()

	if cached || pending {
		return thumb
	}

	imageID := creator.ImageID
	go func() {
		data, err := ui.images.FetchImage(context.Background(), imageID)
		var thumb []byte
		if err == nil {
			thumb, err = platform.MakeThumbnail(data)
		}

		ui.thumbsMu.Lock()
		delete(ui.thumbsPending, imageID)
		if err == nil {
			ui.thumbs[imageID] = thumb
		}
		ui.thumbsMu.Unlock()

		if err != nil {
			ui.log.Error().Err(err).Str("image_id", imageID).Msg("thumbnail fetch failed")
			return
		}
		fyne.Do(func() {
			ui.creatorList.Refresh()
		})
	}()
	return nil
}

// applyFilter recomputes the visible creators from the search term.
func (ui *RootUI) applyFilter() {
	term := ""
	if ui.searchEntry != nil {
		term = ui.searchEntry.Text
	}
	filtered := ui.store.Filter(term)

	ui.filteredMu.Lock()
	ui.filtered = filtered
	ui.filteredMu.Unlock()
}

// updateEmptyLabel shows the right placeholder under an empty list.
func (ui *RootUI) updateEmptyLabel() {
	ui.filteredMu.Lock()
	visible := len(ui.filtered)
	ui.filteredMu.Unlock()

	if visible > 0 {
		ui.emptyLabel.Hide()
		return
	}
	if ui.searchEntry.Text != "" {
		ui.emptyLabel.SetText(ui.localization.GetText(KeySearchNoMatches))
	} else {
		ui.emptyLabel.SetText(ui.localization.GetText(KeyNoCreators))
	}
	ui.emptyLabel.Show()
}

// onStoreUpdate mirrors a new collection snapshot into the list screen.
func (ui *RootUI) onStoreUpdate(snapshot model.CollectionSnapshot) {
	fyne.Do(func() {
		switch {
		case snapshot.Status.IsLoading():
			ui.statusLabel.SetText(ui.localization.GetText(KeyLoading))
			ui.statusLabel.Show()
		case snapshot.Status == model.StatusError:
			ui.statusLabel.SetText(snapshot.Err)
			ui.statusLabel.Show()
		default:
			ui.statusLabel.Hide()
		}

		ui.applyFilter()
		ui.creatorList.Refresh()
		ui.updateEmptyLabel()
	})
}

// onQueueUpdate mirrors the notification queue into the toast overlay.
func (ui *RootUI) onQueueUpdate(notifications []model.Notification) {
	fyne.Do(func() {
		ui.toasts.SetNotifications(notifications)
	})
}

// onPipelineUpdate mirrors upload progress into the edit screen, when open.
func (ui *RootUI) onPipelineUpdate(session *upload.Session) {
	fyne.Do(func() {
		if ui.uploadStatus == nil || session == nil {
			return
		}
		switch session.Phase() {
		case model.PhaseUploading:
			ui.uploadStatus.SetText(ui.localization.GetText(KeyUploading))
		case model.PhaseAttaching:
			ui.uploadStatus.SetText(ui.localization.GetText(KeyAttaching))
		default:
			ui.uploadStatus.SetText("")
		}
		ui.refreshPreviewPane(session)

		// A finished attach changed the creator's image; rebuild the edit
		// screen so the current-image pane picks it up.
		if session.Phase() == model.PhaseDone && ui.controller.Screen() == ScreenEdit {
			ui.render()
		}
	})
}

// refreshPreviewPane redraws the "new image" pane from the session preview.
func (ui *RootUI) refreshPreviewPane(session *upload.Session) {
	if ui.previewPane == nil {
		return
	}

	ui.previewPane.Objects = nil
	if preview := session.Preview(); preview != nil && !preview.Released() {
		img := canvas.NewImageFromResource(
			fyne.NewStaticResource(preview.Name(), preview.Thumbnail()))
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(PreviewPaneMax, PreviewPaneMax))
		ui.previewPane.Objects = []fyne.CanvasObject{
			container.NewVBox(img, widget.NewLabel(preview.Name())),
		}
	}
	ui.previewPane.Refresh()
}

// render swaps the visible screen to match the controller state. Must run on
// the Fyne thread.
func (ui *RootUI) render() {
	// Leaving the edit screen invalidates its widgets.
	if ui.controller.Screen() != ScreenEdit {
		ui.uploadStatus = nil
		ui.previewPane = nil
	}

	var screen fyne.CanvasObject
	switch ui.controller.Screen() {
	case ScreenCreate:
		screen = ui.buildRegisterScreen()
	case ScreenEdit:
		screen = ui.buildEditScreen()
	case ScreenNotFound:
		screen = ui.buildNotFoundScreen()
	default:
		screen = ui.listScreen
	}

	ui.content.Objects = []fyne.CanvasObject{screen}
	ui.content.Refresh()
}

// buildRegisterScreen assembles the create form.
func (ui *RootUI) buildRegisterScreen() fyne.CanvasObject {
	nameEntry := widget.NewEntry()
	descEntry := widget.NewMultiLineEntry()
	genderSelect := ui.newGenderSelect()

	saveBtn := widget.NewButton(ui.localization.GetText(KeySave), func() {
		draft := model.CreatorDraft{
			Name:        nameEntry.Text,
			Description: descEntry.Text,
			Gender:      selectedGender(genderSelect),
		}
		go func() {
			if _, err := ui.store.Create(context.Background(), draft); err != nil {
				return
			}
			ui.controller.SubmitSucceeded()
			fyne.Do(ui.render)
		}()
	})
	saveBtn.Importance = widget.HighImportance

	form := widget.NewForm(
		widget.NewFormItem(ui.localization.GetText(KeyName), nameEntry),
		widget.NewFormItem(ui.localization.GetText(KeyDescription), descEntry),
		widget.NewFormItem(ui.localization.GetText(KeyGender), genderSelect),
	)

	return ui.formScreen(ui.localization.GetText(KeyRegister), form, saveBtn)
}

// buildEditScreen assembles the edit form for the creator the controller has
// open. The creator can disappear between render calls after a racing delete
// or refresh.
func (ui *RootUI) buildEditScreen() fyne.CanvasObject {
	id := ui.controller.EditingID()
	creator, ok := ui.store.Find(id)
	if !ok {
		return ui.buildNotFoundScreen()
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetText(creator.Name)
	descEntry := widget.NewMultiLineEntry()
	descEntry.SetText(creator.Description)
	genderSelect := ui.newGenderSelect()
	genderSelect.SetSelected(ui.genderLabelFor(creator.Gender))

	saveBtn := widget.NewButton(ui.localization.GetText(KeySave), func() {
		edited := model.Creator{
			ID:          creator.ID,
			Name:        nameEntry.Text,
			Description: descEntry.Text,
			Gender:      selectedGender(genderSelect),
			ImageID:     creator.ImageID,
		}
		go func() {
			if _, err := ui.store.Update(context.Background(), creator.ID, edited); err != nil {
				return
			}
			ui.controller.SubmitSucceeded()
			ui.pipeline.Close()
			fyne.Do(ui.render)
		}()
	})
	saveBtn.Importance = widget.HighImportance

	form := widget.NewForm(
		widget.NewFormItem(ui.localization.GetText(KeyName), nameEntry),
		widget.NewFormItem(ui.localization.GetText(KeyDescription), descEntry),
		widget.NewFormItem(ui.localization.GetText(KeyGender), genderSelect),
	)

	imageSection := ui.buildImageSection(creator)

	body := container.NewVBox(form, widget.NewSeparator(), imageSection)
	return ui.formScreen(ui.localization.GetText(KeyEdit), body, saveBtn)
}

// buildImageSection assembles the current image display and the upload
// controls of the edit screen.
func (ui *RootUI) buildImageSection(creator model.Creator) fyne.CanvasObject {
	currentPane := container.NewStack()
	if creator.HasImage() {
		if thumb := ui.thumbnailFor(creator); len(thumb) > 0 {
			img := canvas.NewImageFromResource(
				fyne.NewStaticResource(fmt.Sprintf("current-%s.png", creator.ImageID), thumb))
			img.FillMode = canvas.ImageFillContain
			img.SetMinSize(fyne.NewSize(PreviewPaneMax, PreviewPaneMax))
			currentPane.Objects = []fyne.CanvasObject{img}
		} else {
			currentPane.Objects = []fyne.CanvasObject{
				widget.NewLabel(ui.localization.GetText(KeyLoading)),
			}
		}
	} else {
		currentPane.Objects = []fyne.CanvasObject{
			widget.NewLabel(ui.localization.GetText(KeyNoImage)),
		}
	}

	ui.previewPane = container.NewStack()
	ui.uploadStatus = widget.NewLabel("")

	chooseBtn := widget.NewButton(ui.localization.GetText(KeyChooseImage), ui.onChooseImage)
	uploadBtn := widget.NewButton(ui.localization.GetText(KeyUploadImage), func() {
		go func() {
			_ = ui.pipeline.Run(context.Background())
		}()
	})

	current := container.NewVBox(
		widget.NewLabelWithStyle(ui.localization.GetText(KeyCurrentImage),
			fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		currentPane,
	)
	fresh := container.NewVBox(
		widget.NewLabelWithStyle(ui.localization.GetText(KeyNewImage),
			fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		ui.previewPane,
		container.NewHBox(chooseBtn, uploadBtn),
		ui.uploadStatus,
	)

	return container.NewGridWithColumns(2, current, fresh)
}

// buildNotFoundScreen assembles the missing-creator page.
func (ui *RootUI) buildNotFoundScreen() fyne.CanvasObject {
	title := widget.NewLabelWithStyle(ui.localization.GetText(KeyNotFound),
		fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	detail := widget.NewLabel(ui.localization.GetText(KeyNotFoundDetail))
	detail.Alignment = fyne.TextAlignCenter

	backBtn := widget.NewButton(ui.localization.GetText(KeyBack), ui.onBackClick)

	return container.NewCenter(container.NewVBox(title, detail, backBtn))
}

// formScreen wraps a form body with a title bar and back button.
func (ui *RootUI) formScreen(title string, body fyne.CanvasObject, saveBtn *widget.Button) fyne.CanvasObject {
	backBtn := widget.NewButton(IconBack+" "+ui.localization.GetText(KeyBack), ui.onBackClick)
	titleLabel := widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	top := container.NewBorder(nil, widget.NewSeparator(), backBtn, nil, titleLabel)

	return container.NewBorder(top, container.NewPadded(saveBtn), nil, nil,
		container.NewPadded(container.NewVScroll(body)))
}

// newGenderSelect builds the gender picker with localized labels.
func (ui *RootUI) newGenderSelect() *widget.Select {
	return widget.NewSelect([]string{
		ui.localization.GetText(KeyGenderMale),
		ui.localization.GetText(KeyGenderFemale),
		ui.localization.GetText(KeyGenderOther),
	}, nil)
}

// genderLabelFor maps a stored gender value onto its localized label.
func (ui *RootUI) genderLabelFor(gender string) string {
	switch gender {
	case GenderMale:
		return ui.localization.GetText(KeyGenderMale)
	case GenderFemale:
		return ui.localization.GetText(KeyGenderFemale)
	case GenderOther:
		return ui.localization.GetText(KeyGenderOther)
	default:
		return gender
	}
}

// selectedGender maps the picker selection back to the stored value.
func selectedGender(sel *widget.Select) string {
	switch sel.SelectedIndex() {
	case 0:
		return GenderMale
	case 1:
		return GenderFemale
	case 2:
		return GenderOther
	default:
		return sel.Selected
	}
}

// onRegisterClick opens the create form.
func (ui *RootUI) onRegisterClick() {
	ui.controller.OpenRegister()
	ui.render()
}

// onBackClick abandons the current form.
func (ui *RootUI) onBackClick() {
	ui.controller.GoBack()
	ui.pipeline.Close()
	ui.render()
}

// onEditClick navigates to the edit screen, refreshing once if the creator
// is not in the local collection.
func (ui *RootUI) onEditClick(id string) {
	go func() {
		_, ok := ui.controller.OpenEditor(context.Background(), id)
		if ok {
			ui.pipeline.Open(id)
		}
		fyne.Do(ui.render)
	}()
}

// onDeleteClick arms and shows the delete confirmation dialog.
func (ui *RootUI) onDeleteClick(id string) {
	ui.controller.RequestDelete(id)

	dialog.ShowCustomConfirm(
		ui.localization.GetText(KeyConfirmDelete),
		ui.localization.GetText(KeyDelete),
		ui.localization.GetText(KeyCancel),
		widget.NewLabel(ui.localization.GetText(KeyDeleteQuestion)),
		func(confirmed bool) {
			if !confirmed {
				ui.controller.CancelDelete()
				return
			}
			target, ok := ui.controller.ConfirmDelete()
			if !ok {
				return
			}
			go func() {
				if err := ui.store.Remove(context.Background(), target); err != nil {
					return
				}
				ui.controller.DeleteSucceeded(target)
				fyne.Do(ui.render)
			}()
		},
		ui.window,
	)
}

// onChooseImage opens the file picker and hands the bytes to the pipeline.
func (ui *RootUI) onChooseImage() {
	picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		name := reader.URI().Name()
		data, err := io.ReadAll(reader)
		if err != nil {
			ui.log.Error().Err(err).Str("file", name).Msg("read picked file failed")
			ui.queue.Push(fmt.Sprintf("Could not read file: %s", name), model.SeverityError)
			return
		}

		go func() {
			_ = ui.pipeline.Select(name, data)
		}()
	}, ui.window)
	picker.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
	picker.Show()
}

// onLanguageChange switches the UI language and rebuilds static chrome.
func (ui *RootUI) onLanguageChange(lang string) {
	ui.settings.SetLanguage(lang)
	ui.localization.SetLanguage(lang)

	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.createMenu()
	ui.listScreen = ui.buildListScreen()
	ui.applyFilter()
	ui.render()
}

// onShowSettings opens the settings dialog.
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization)
}
