package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/DrewBradfordXYZ/appwrite-go"
	"github.com/DrewBradfordXYZ/appwrite-go/core"
	"github.com/DrewBradfordXYZ/appwrite-go/databases"
	"github.com/DrewBradfordXYZ/appwrite-go/sites"
	"github.com/DrewBradfordXYZ/appwrite-go/tablesdb"
	"github.com/DrewBradfordXYZ/appwrite-go/tokens"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(true)
	table.SetHeader(header)
	return table
}

func newDatabasesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "databases",
		Short: "Manage databases",
	}

	var search string
	list := &cobra.Command{
		Use:               "list",
		Short:             "List databases",
		PersistentPreRunE: a.preRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := databases.ListParams{}
			if search != "" {
				params.Search = &search
			}
			res, err := databases.New(a.client).List(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to list databases: %w", err)
			}

			table := newTable(a.out, "ID", "Name", "Type", "Enabled", "Created")
			for _, db := range res.Databases {
				table.Append([]string{db.ID, db.Name, db.Type, strconv.FormatBool(db.Enabled), db.CreatedAt})
			}
			table.Render()
			return nil
		},
	}
	list.Flags().StringVar(&search, "search", "", "filter databases by name")

	cmd.AddCommand(list)
	return cmd
}

func newTablesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Manage TablesDB tables",
	}

	var databaseID string
	list := &cobra.Command{
		Use:               "list",
		Short:             "List the tables of a database",
		PersistentPreRunE: a.preRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := newTable(a.out, "ID", "Name", "Columns", "Row security", "Enabled")
			svc := tablesdb.New(a.client)
			params := tablesdb.ListTablesParams{DatabaseID: databaseID}
			for t, err := range svc.IterateTables(cmd.Context(), params, appwrite.PaginationOptions{}) {
				if err != nil {
					return fmt.Errorf("failed to list tables: %w", err)
				}
				table.Append([]string{t.ID, t.Name, strconv.Itoa(len(t.Columns)), strconv.FormatBool(t.RowSecurity), strconv.FormatBool(t.Enabled)})
			}
			table.Render()
			return nil
		},
	}
	list.Flags().StringVarP(&databaseID, "database", "d", "", "database ID")
	_ = list.MarkFlagRequired("database")

	cmd.AddCommand(list)
	return cmd
}

func newRowsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rows",
		Short: "Read TablesDB rows",
	}

	var (
		databaseID string
		tableID    string
		queries    []string
		limit      int
	)
	list := &cobra.Command{
		Use:               "list",
		Short:             "Print the rows of a table as JSON",
		Example:           `  appwrite rows list -d main -t books --query '{"method":"equal","attribute":"year","values":[1965]}'`,
		PersistentPreRunE: a.preRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := tablesdb.New(a.client)
			params := tablesdb.ListRowsParams{DatabaseID: databaseID, TableID: tableID, Queries: queries}
			enc := json.NewEncoder(a.out)

			var n int
			for row, err := range svc.IterateRows(cmd.Context(), params, appwrite.PaginationOptions{Limit: limit}) {
				if err != nil {
					return fmt.Errorf("failed to list rows: %w", err)
				}
				if err := enc.Encode(row); err != nil {
					return err
				}
				n++
			}
			a.log.Debug("listed rows", "table", tableID, "count", n)
			return nil
		},
	}
	list.Flags().StringVarP(&databaseID, "database", "d", "", "database ID")
	list.Flags().StringVarP(&tableID, "table", "t", "", "table ID")
	list.Flags().StringArrayVarP(&queries, "query", "q", nil, "query in JSON form (repeatable)")
	list.Flags().IntVar(&limit, "limit", 0, "maximum number of rows (0 for all)")
	_ = list.MarkFlagRequired("database")
	_ = list.MarkFlagRequired("table")

	cmd.AddCommand(list)
	return cmd
}

func newSitesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sites",
		Short: "Manage sites",
	}

	list := &cobra.Command{
		Use:               "list",
		Short:             "List sites",
		PersistentPreRunE: a.preRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := sites.New(a.client).List(cmd.Context(), sites.ListParams{})
			if err != nil {
				return fmt.Errorf("failed to list sites: %w", err)
			}

			table := newTable(a.out, "ID", "Name", "Framework", "Live", "Deployment")
			for _, s := range res.Sites {
				table.Append([]string{s.ID, s.Name, s.Framework, strconv.FormatBool(s.Live), s.DeploymentID})
			}
			table.Render()
			return nil
		},
	}

	var (
		siteID       string
		codePath     string
		activate     bool
		buildCommand string
	)
	deploy := &cobra.Command{
		Use:               "deploy",
		Short:             "Upload a gzipped tarball as a new deployment",
		PersistentPreRunE: a.preRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := core.NewInputFileFromPath(codePath)
			if err != nil {
				return err
			}
			params := sites.CreateDeploymentParams{
				SiteID:   siteID,
				Code:     &code,
				Activate: activate,
				OnProgress: func(p core.UploadProgress) {
					a.log.Info("uploading", "progress", fmt.Sprintf("%.0f%%", p.Progress), "chunk", p.ChunksUploaded, "chunks", p.ChunksTotal)
				},
			}
			if buildCommand != "" {
				params.BuildCommand = &buildCommand
			}

			dep, err := sites.New(a.client).CreateDeployment(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to deploy: %w", err)
			}
			fmt.Fprintf(a.out, "deployment %s: %s\n", dep.ID, dep.Status)
			return nil
		},
	}
	deploy.Flags().StringVarP(&siteID, "site", "s", "", "site ID")
	deploy.Flags().StringVar(&codePath, "code", "", "path of the .tar.gz archive")
	deploy.Flags().BoolVar(&activate, "activate", true, "make the deployment live once built")
	deploy.Flags().StringVar(&buildCommand, "build-command", "", "override the build command")
	_ = deploy.MarkFlagRequired("site")
	_ = deploy.MarkFlagRequired("code")

	cmd.AddCommand(list, deploy)
	return cmd
}

func newTokensCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Manage file tokens",
	}

	var (
		bucketID string
		fileID   string
		ttl      time.Duration
	)
	create := &cobra.Command{
		Use:               "create",
		Short:             "Create a token for a storage file and print its secret",
		PersistentPreRunE: a.preRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := tokens.CreateFileTokenParams{BucketID: bucketID, FileID: fileID}
			if ttl > 0 {
				expire := core.FormatDatetime(time.Now().Add(ttl).UTC())
				params.Expire = &expire
			}

			tok, err := tokens.New(a.client).CreateFileToken(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to create token: %w", err)
			}
			fmt.Fprintln(a.out, tok.Secret)
			a.log.Debug("token created", "id", tok.ID, "expire", tok.Expire)
			return nil
		},
	}
	create.Flags().StringVarP(&bucketID, "bucket", "b", "", "bucket ID")
	create.Flags().StringVarP(&fileID, "file", "f", "", "file ID")
	create.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (0 for no expiry)")
	_ = create.MarkFlagRequired("bucket")
	_ = create.MarkFlagRequired("file")

	cmd.AddCommand(create)
	return cmd
}

// withTimeout bounds a command context.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, d)
}
