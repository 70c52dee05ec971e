package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/desirely/creator-desk/internal/model"
)

// CreatorCard is one row of the creator list: avatar, name, description,
// gender, and the edit/delete actions. Cards are recycled by widget.List, so
// Update must fully reset every field.
type CreatorCard struct {
	container *fyne.Container

	avatar      *canvas.Image
	placeholder *widget.Label
	nameLabel   *widget.Label
	descLabel   *widget.Label
	genderLabel *widget.Label
	editBtn     *widget.Button
	deleteBtn   *widget.Button

	creatorID string
	onEdit    func(id string)
	onDelete  func(id string)
}

// NewCreatorCard builds an empty card; Update fills it per row.
func NewCreatorCard(localization *Localization, onEdit, onDelete func(id string)) *CreatorCard {
	card := &CreatorCard{
		onEdit:   onEdit,
		onDelete: onDelete,
	}

	card.avatar = canvas.NewImageFromResource(nil)
	card.avatar.FillMode = canvas.ImageFillContain
	card.avatar.SetMinSize(fyne.NewSize(CardImageSize, CardImageSize))
	card.avatar.Hide()

	card.placeholder = widget.NewLabel(IconImage)
	card.placeholder.Alignment = fyne.TextAlignCenter

	card.nameLabel = widget.NewLabel("")
	card.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	card.nameLabel.Truncation = fyne.TextTruncateEllipsis

	card.descLabel = widget.NewLabel("")
	card.descLabel.Truncation = fyne.TextTruncateEllipsis

	card.genderLabel = widget.NewLabel("")

	card.editBtn = widget.NewButton(localization.GetText(KeyEdit), func() {
		if card.creatorID != "" {
			card.onEdit(card.creatorID)
		}
	})
	card.deleteBtn = widget.NewButton(localization.GetText(KeyDelete), func() {
		if card.creatorID != "" {
			card.onDelete(card.creatorID)
		}
	})
	card.deleteBtn.Importance = widget.DangerImportance

	imagePane := container.NewGridWrap(fyne.NewSize(CardImageSize, CardImageSize),
		container.NewStack(card.placeholder, card.avatar))
	info := container.NewVBox(card.nameLabel, card.descLabel, card.genderLabel)
	actions := container.NewVBox(card.editBtn, card.deleteBtn)

	card.container = container.NewBorder(nil, widget.NewSeparator(), imagePane, actions, info)
	return card
}

// Container returns the card's root object.
func (card *CreatorCard) Container() fyne.CanvasObject {
	return card.container
}

// Update fills the card with a creator's data. Thumbnail bytes may be nil
// while the image is still being fetched; the placeholder shows instead.
func (card *CreatorCard) Update(creator model.Creator, thumbnail []byte) {
	card.creatorID = creator.ID
	card.nameLabel.SetText(creator.DisplayName())
	card.descLabel.SetText(creator.Description)
	card.genderLabel.SetText(genderText(creator.Gender))

	if len(thumbnail) > 0 {
		card.avatar.Resource = fyne.NewStaticResource(
			fmt.Sprintf("creator-%s.png", creator.ID), thumbnail)
		card.avatar.Show()
		card.placeholder.Hide()
		card.avatar.Refresh()
	} else {
		card.avatar.Resource = nil
		card.avatar.Hide()
		card.placeholder.Show()
	}
}

// genderText renders a gender value for display, passing unknown values
// through unchanged.
func genderText(gender string) string {
	if gender == "" {
		return DashPlaceholder
	}
	return gender
}
