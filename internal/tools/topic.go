package tools

import (
	"context"
	"encoding/json"

	"github.com/hashpilot/hashpilot/internal/build"
	"github.com/hashpilot/hashpilot/internal/params"
	"github.com/hashpilot/hashpilot/internal/toolkit"
)

func createTopicTool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "create_topic",
		Name:   "Create Topic",
		Description: `Creates a consensus topic. The caller's key becomes the admin key; set
is_submit_key to true to restrict message submission to the same key.`,
		Schema:     params.CreateTopicSchema,
		SchemaJSON: json.RawMessage(params.CreateTopicSchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "create topic"
			var p params.CreateTopic
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			norm, err := d.Normaliser.CreateTopic(ctx, p)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			built, err := build.CreateTopic(norm)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			result, err := d.Executor.Execute(ctx, built)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			return report(result, "Topic created successfully.", "Topic ID: "+result.TopicID)
		},
	}
}

func updateTopicTool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "update_topic",
		Name:   "Update Topic",
		Description: `Updates a consensus topic: memo, admin and submit keys, auto-renew
account, and expiration time (RFC 3339). Key fields accept a key string,
true for the operator key, or false to clear.`,
		Schema:     params.UpdateTopicSchema,
		SchemaJSON: json.RawMessage(params.UpdateTopicSchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "update topic"
			var p params.UpdateTopic
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			norm, err := d.Normaliser.UpdateTopic(ctx, p)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			built, err := build.UpdateTopic(norm)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			result, err := d.Executor.Execute(ctx, built)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			return report(result, "Topic updated successfully.")
		},
	}
}

func deleteTopicTool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "delete_topic",
		Name:   "Delete Topic",
		Description: `Deletes a consensus topic. Requires the topic's admin key to sign; the
operation fails on the ledger otherwise.`,
		Schema:     params.DeleteTopicSchema,
		SchemaJSON: json.RawMessage(params.DeleteTopicSchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "delete topic"
			var p params.DeleteTopic
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			norm, err := d.Normaliser.DeleteTopic(ctx, p)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			built, err := build.DeleteTopic(norm)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			result, err := d.Executor.Execute(ctx, built)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			return report(result, "Topic deleted successfully.")
		},
	}
}

func submitTopicMessageTool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "submit_topic_message",
		Name:   "Submit Topic Message",
		Description: `Submits a message to a consensus topic. Supports optional scheduling via
scheduling_params.`,
		Schema:     params.SubmitTopicMessageSchema,
		SchemaJSON: json.RawMessage(params.SubmitTopicMessageSchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "submit topic message"
			var p params.SubmitTopicMessage
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			norm, err := d.Normaliser.SubmitTopicMessage(ctx, p)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			built, err := build.SubmitTopicMessage(norm)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			result, err := d.Executor.Execute(ctx, built)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			return report(result, "Message submitted successfully.")
		},
	}
}
