package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// DraftsBar is the collapsible bottom bar listing saved reply drafts.
// It disappears entirely while no drafts exist and is refreshed after
// every draft mutation and navigation.
type DraftsBar struct {
	fa       *FlowApp
	expanded bool
	root     *fyne.Container
}

func NewDraftsBar(fa *FlowApp) *DraftsBar {
	return &DraftsBar{
		fa:   fa,
		root: container.NewVBox(),
	}
}

// Container returns the bar's root object for embedding in the shell.
func (db *DraftsBar) Container() fyne.CanvasObject {
	return db.root
}

// Refresh rebuilds the bar from the current draft list.
func (db *DraftsBar) Refresh() {
	drafts := db.fa.session.Drafts()

	db.root.Objects = nil
	if len(drafts) == 0 {
		db.root.Refresh()
		return
	}

	db.root.Add(widget.NewSeparator())

	if db.expanded {
		for _, d := range drafts {
			draft := d

			subject := widget.NewLabelWithStyle(draft.Subject, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
			meta := widget.NewLabel(fmt.Sprintf("To: %s at %s", draft.To, draft.SavedAt.Format("3:04 PM")))
			meta.Importance = widget.MediumImportance

			edit := widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
				db.fa.showEditDraftDialog(draft)
			})
			discard := widget.NewButtonWithIcon("", theme.CancelIcon(), func() {
				db.fa.session.RemoveDraft(draft.ID)
				db.fa.showToast("Draft discarded")
				db.Refresh()
			})

			db.root.Add(container.NewBorder(nil, nil,
				container.NewHBox(subject, meta),
				container.NewHBox(edit, discard)))
		}
	}

	toggleIcon := theme.MenuDropUpIcon()
	if db.expanded {
		toggleIcon = theme.MenuDropDownIcon()
	}
	toggle := widget.NewButtonWithIcon(fmt.Sprintf("Drafts (%d)", len(drafts)), toggleIcon, func() {
		db.expanded = !db.expanded
		db.Refresh()
	})
	db.root.Add(toggle)

	db.root.Refresh()
}
