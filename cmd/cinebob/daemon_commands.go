package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cinebob/internal/ipc"
)

func newDaemonCommands(ctx *commandContext) []*cobra.Command {
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show daemon and catalog status",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			colorize := shouldColorize(stdout)

			resp, err := statusSnapshot(ctx)
			if err != nil {
				for _, line := range renderSectionHeader("Daemon Status", colorize) {
					fmt.Fprintln(stdout, line)
				}
				fmt.Fprintln(stdout, renderStatusLine("Daemon", statusWarn, "Not running", colorize))
				fmt.Fprintln(stdout, renderStatusLine("Socket", statusInfo, ctx.socketPath(), colorize))
				return nil
			}

			for _, line := range renderSectionHeader("Daemon Status", colorize) {
				fmt.Fprintln(stdout, line)
			}
			runningKind := statusWarn
			if resp.Running {
				runningKind = statusOK
			}
			fmt.Fprintln(stdout, renderStatusLine("Daemon", runningKind, fmt.Sprintf("running=%s pid=%d", yesNo(resp.Running), resp.PID), colorize))
			if resp.BotUsername != "" {
				fmt.Fprintln(stdout, renderStatusLine("Bot", statusOK, "@"+resp.BotUsername, colorize))
			}
			fmt.Fprintln(stdout, renderStatusLine("Socket", statusInfo, resp.SocketPath, colorize))
			fmt.Fprintln(stdout, renderStatusLine("Store", statusInfo, resp.StorePath, colorize))
			fmt.Fprintln(stdout)

			for _, line := range renderSectionHeader("Catalog", colorize) {
				fmt.Fprintln(stdout, line)
			}
			rows := [][]string{
				{"Movies", strconv.Itoa(resp.Movies)},
				{"Genres", strconv.Itoa(resp.Genres)},
			}
			fmt.Fprintln(stdout, renderTable([]string{"Metric", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}

	stopCmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the cinebobd daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			err := ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Stop()
				if err != nil {
					return err
				}
				if resp.Stopped {
					fmt.Fprintln(stdout, "Daemon stopped")
				} else {
					fmt.Fprintln(stdout, "Stop request sent")
				}
				return nil
			})
			if err != nil && strings.Contains(err.Error(), "connect to daemon") {
				fmt.Fprintln(stdout, "Daemon is not running")
				return nil
			}
			return err
		},
	}

	sendTestCmd := &cobra.Command{
		Use:   "send-test <chat-id>",
		Short: "Send a test message to a chat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chatID, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
			if err != nil {
				return fmt.Errorf("invalid chat id %q", args[0])
			}
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.SendTest(chatID)
				if err != nil {
					return err
				}
				if !resp.Sent {
					if resp.Message != "" {
						return errors.New(resp.Message)
					}
					return errors.New("test message not sent")
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Test message sent")
				return nil
			})
		},
	}

	return []*cobra.Command{statusCmd, stopCmd, sendTestCmd}
}

func statusSnapshot(ctx *commandContext) (ipc.StatusResponse, error) {
	client, err := ctx.dialClient()
	if err != nil {
		return ipc.StatusResponse{}, err
	}
	defer client.Close()
	return client.Status()
}
