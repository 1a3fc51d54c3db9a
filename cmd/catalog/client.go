package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	catalogproto "file-catalog/api/catalogproto/proto-generate"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
)

type clientOptions struct {
	addr    string
	token   string
	timeout time.Duration
}

func clientCmd() *cobra.Command {
	opts := &clientOptions{}

	cmd := &cobra.Command{
		Use:   "client",
		Short: "Talk to a running catalog server over gRPC",
	}

	cmd.PersistentFlags().StringVarP(&opts.addr, "addr", "a", "localhost:50051", "gRPC server address")
	cmd.PersistentFlags().StringVarP(&opts.token, "token", "t", os.Getenv("CATALOG_TOKEN"), "Bearer token (defaults to $CATALOG_TOKEN)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Request timeout")

	cmd.AddCommand(
		clientListCmd(opts),
		clientSetCurrentCmd(opts),
		clientDownloadCmd(opts),
		clientUsersCmd(opts),
	)
	return cmd
}

// call dials the server and runs fn with an authorized context.
func (o *clientOptions) call(ctx context.Context, fn func(context.Context, catalogproto.CatalogServiceClient) error) error {
	if o.token == "" {
		return errors.New("no token: pass --token or set CATALOG_TOKEN")
	}
	conn, err := grpc.NewClient(o.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", o.addr, err)
	}
	defer conn.Close()

	ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+o.token)
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()
	return fn(ctx, catalogproto.NewCatalogServiceClient(conn))
}

func clientListCmd(opts *clientOptions) *cobra.Command {
	var tab string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog items",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.call(cmd.Context(), func(ctx context.Context, c catalogproto.CatalogServiceClient) error {
				resp, err := c.ListItems(ctx, &catalogproto.ListItemsRequest{Tab: tab})
				if err != nil {
					return err
				}
				printListing(cmd.OutOrStdout(), resp)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&tab, "tab", "", `Tab to list: "all" or "updates" (default picks one)`)

	return cmd
}

func printListing(out io.Writer, resp *catalogproto.ListItemsResponse) {
	fmt.Fprintf(out, "tab %s, %d with updates, %d subscribed\n\n", resp.GetTab(), resp.GetUpdatedCount(), resp.GetSubscribedCount())
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCURRENT\tVERSIONS\tUPDATED\tURL")
	for _, it := range resp.GetItems() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			it.GetId(), it.GetName(), it.GetCurrentVersion(), len(it.GetVersions()), it.GetLastUpdated(), it.GetDistributionUrl())
	}
	w.Flush()
}

func clientSetCurrentCmd(opts *clientOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set-current ITEM_ID VERSION_ID",
		Short: "Make a version the current one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.call(cmd.Context(), func(ctx context.Context, c catalogproto.CatalogServiceClient) error {
				resp, err := c.SetCurrentVersion(ctx, &catalogproto.VersionRequest{ItemId: args[0], VersionId: args[1]})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s is now at %s: %s\n",
					resp.GetItem().GetName(), resp.GetItem().GetCurrentVersion(), resp.GetItem().GetDistributionUrl())
				return nil
			})
		},
	}
}

func clientDownloadCmd(opts *clientOptions) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "download ITEM_ID VERSION_ID",
		Short: "Fetch the stored content of a version",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.call(cmd.Context(), func(ctx context.Context, c catalogproto.CatalogServiceClient) error {
				stream, err := c.DownloadVersion(ctx, &catalogproto.VersionRequest{ItemId: args[0], VersionId: args[1]})
				if err != nil {
					return err
				}
				var buf bytes.Buffer
				v, err := receiveVersion(stream, &buf)
				if err != nil {
					return err
				}
				path := outPath
				if path == "" {
					path = v.GetFilename()
				}
				if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%d bytes)\n", path, buf.Len())
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (defaults to the version's filename)")

	return cmd
}

// receiveVersion copies a download stream into w and returns the version
// metadata sent ahead of the data.
func receiveVersion(stream grpc.ServerStreamingClient[catalogproto.VersionChunk], w io.Writer) (*catalogproto.Version, error) {
	var v *catalogproto.Version
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if chunk.GetVersion() != nil {
			v = chunk.GetVersion()
		}
		if _, err := w.Write(chunk.GetData()); err != nil {
			return nil, err
		}
	}
	if v == nil {
		return nil, errors.New("download stream carried no version")
	}
	return v, nil
}

func clientUsersCmd(opts *clientOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List the users items can be restricted to",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.call(cmd.Context(), func(ctx context.Context, c catalogproto.CatalogServiceClient) error {
				resp, err := c.ListUsers(ctx, &emptypb.Empty{})
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tEMAIL")
				for _, u := range resp.GetUsers() {
					fmt.Fprintf(w, "%s\t%s\t%s\n", u.GetId(), u.GetName(), u.GetEmail())
				}
				return w.Flush()
			})
		},
	}
}
