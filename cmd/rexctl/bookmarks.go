package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"thesaurusrex/internal/domain"
	"thesaurusrex/internal/service"

	"github.com/spf13/cobra"
)

func newBookmarksCmd(open envOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookmarks",
		Short: "List or edit a user's bookmarks",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print bookmarks, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := userFlag(cmd)
			if err != nil {
				return err
			}
			return withEnv(open, func(e *env) error {
				bookmarks := service.NewBookmarkService(e.kv, e.logger).List(cmd.Context(), userID)
				if len(bookmarks) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no bookmarks")
					return nil
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, b := range bookmarks {
					fmt.Fprintf(w, "%s\t%s\t%s\n", b.Word, b.PartOfSpeech, b.Phonetic)
				}
				return w.Flush()
			})
		},
	})

	add := &cobra.Command{
		Use:   "add <word>",
		Short: "Look up a word and bookmark it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := userFlag(cmd)
			if err != nil {
				return err
			}
			offline, err := cmd.Flags().GetBool("offline")
			if err != nil {
				return err
			}
			word := strings.TrimSpace(args[0])

			return withEnv(open, func(e *env) error {
				ctx := cmd.Context()
				bookmarks := service.NewBookmarkService(e.kv, e.logger)
				if bookmarks.Contains(ctx, userID, word) {
					fmt.Fprintf(cmd.OutOrStdout(), "%q is already bookmarked\n", word)
					return nil
				}

				var entry *domain.DictionaryEntry
				if !offline {
					entry, err = e.lookup.Lookup(ctx, word)
					if err != nil {
						return fmt.Errorf("lookup %q: %w", word, err)
					}
				}
				return bookmarks.Add(ctx, userID, domain.NewBookmark(word, entry))
			})
		},
	}
	add.Flags().Bool("offline", false, "Skip the lookup and store Unknown details")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <word>",
		Short: "Remove a bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := userFlag(cmd)
			if err != nil {
				return err
			}
			return withEnv(open, func(e *env) error {
				return service.NewBookmarkService(e.kv, e.logger).Remove(cmd.Context(), userID, args[0])
			})
		},
	})

	return cmd
}
