package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/k-yamanaka/studycards/internal/collection"
	"github.com/k-yamanaka/studycards/internal/ledger"
)

// kindFlag is a --kind flag value restricted to the known collection kinds.
type kindFlag collection.Kind

var _ pflag.Value = (*kindFlag)(nil)

func (k *kindFlag) Set(val string) error {
	switch collection.Kind(val) {
	case collection.KindCategory, collection.KindPackage:
		*k = kindFlag(val)
		return nil
	}
	return fmt.Errorf("must be one of %s or %s", collection.KindCategory, collection.KindPackage)
}

func (k *kindFlag) String() string {
	return string(*k)
}

func (k *kindFlag) Type() string {
	return "kind"
}

func newCollectionCommand() *cobra.Command {
	collectionCommand := &cobra.Command{
		Use:   "collection",
		Short: "Manage card collections",
	}

	collectionCommand.AddCommand(newCollectionCreateCommand())
	collectionCommand.AddCommand(newCollectionListCommand())
	collectionCommand.AddCommand(newCollectionDeleteCommand())
	collectionCommand.AddCommand(newCollectionAddCardCommand())

	return collectionCommand
}

func newCollectionCreateCommand() *cobra.Command {
	kind := kindFlag(collection.KindCategory)
	var name string

	command := &cobra.Command{
		Use:   "create [id]",
		Short: "Create a new collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]
			if name == "" {
				name = id
			}

			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			manager := collection.NewManager(
				collection.NewDBCollectionRepository(db),
				ledger.NewDBProgressRepository(db),
			)
			created, err := manager.Create(ctx, id, name, collection.Kind(kind))
			if err != nil {
				return err
			}

			fmt.Printf("Created %s collection %s.\n", created.Kind, created.ID)
			return nil
		},
	}

	command.Flags().Var(&kind, "kind", "Collection kind: category or package")
	command.Flags().StringVar(&name, "name", "", "Display name (defaults to the id)")
	return command
}

func newCollectionListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			repo := collection.NewDBCollectionRepository(db)
			collections, err := repo.List(ctx)
			if err != nil {
				return err
			}
			if len(collections) == 0 {
				fmt.Println("No collections yet.")
				return nil
			}

			for _, c := range collections {
				fmt.Printf("%-24s %-8s %s\n", c.ID, c.Kind, c.Name)
			}
			return nil
		},
	}
}

func newCollectionDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a collection (packages take their cards and progress with them)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			manager := collection.NewManager(
				collection.NewDBCollectionRepository(db),
				ledger.NewDBProgressRepository(db),
			)
			if err := manager.Delete(ctx, id); err != nil {
				return err
			}

			fmt.Printf("Deleted collection %s.\n", id)
			return nil
		},
	}
}

func newCollectionAddCardCommand() *cobra.Command {
	var front string
	var back string

	command := &cobra.Command{
		Use:   "add-card [collection]",
		Short: "Add a card to a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			collectionID := args[0]
			if front == "" || back == "" {
				return fmt.Errorf("both --front and --back are required")
			}

			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			repo := collection.NewDBCollectionRepository(db)
			existing, err := repo.Find(ctx, collectionID)
			if err != nil {
				return err
			}
			if existing == nil {
				return fmt.Errorf("collection %q does not exist", collectionID)
			}

			cards := []*collection.Card{{Front: front, Back: back}}
			if err := repo.AddCards(ctx, collectionID, cards); err != nil {
				return err
			}

			fmt.Printf("Added card %d at position %d.\n", cards[0].ID, cards[0].Position)
			return nil
		},
	}

	command.Flags().StringVar(&front, "front", "", "Front of the card (the prompt)")
	command.Flags().StringVar(&back, "back", "", "Back of the card (the answer)")
	return command
}
