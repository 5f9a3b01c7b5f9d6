// Copyright 2017 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package client talks to an rdfstore server through its HTTP API.
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/pquads"
)

func New(addr string) *Client {
	return &Client{addr: strings.TrimSuffix(addr, "/"), cli: http.DefaultClient}
}

// Client is a struct used for communicating with an rdfstore server through HTTP.
type Client struct {
	addr string
	cli  *http.Client
}

func (c *Client) SetHTTPClient(cli *http.Client) {
	c.cli = cli
}
func (c *Client) url(s string, q map[string]string) string {
	addr := c.addr + s
	if len(q) != 0 {
		p := make(url.Values, len(q))
		for k, v := range q {
			p.Set(k, v)
		}
		addr += "?" + p.Encode()
	}
	return addr
}

type errRequestFailed struct {
	Status     string
	StatusCode int
	Message    string
}

func (e errRequestFailed) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed: %d %v: %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("request failed: %d %v", e.StatusCode, e.Status)
}

func requestFailed(resp *http.Response) error {
	e := errRequestFailed{StatusCode: resp.StatusCode, Status: resp.Status}
	var body struct {
		Error string `json:"error"`
	}
	if json.NewDecoder(io.LimitReader(resp.Body, 64*1024)).Decode(&body) == nil {
		e.Message = body.Error
	}
	return e
}

// QuadReader streams every statement of the store.
func (c *Client) QuadReader() (quad.ReadCloser, error) {
	resp, err := c.cli.Get(c.url("/api/v2/read", map[string]string{
		"format": "pquads",
	}))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, requestFailed(resp)
	}
	r := pquads.NewReader(resp.Body, 10*1024*1024)
	r.SetCloser(resp.Body)
	return r, nil
}

type funcCloser struct {
	f      func() error
	closed bool
}

func (c *funcCloser) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.f()
}

// QuadWriter returns a writer that streams quads to the store.
// The request completes when the writer is closed.
func (c *Client) QuadWriter() (quad.WriteCloser, error) {
	pr, pw := io.Pipe()
	req, err := http.NewRequest("POST", c.url("/api/v2/write", nil), pr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", pquads.ContentType)
	errc := make(chan error, 1)
	go func() {
		defer func() {
			close(errc)
			pr.Close()
		}()
		resp, err := c.cli.Do(req)
		if resp != nil && resp.Body != nil {
			defer resp.Body.Close()
		}
		if err == nil && resp.StatusCode != http.StatusOK {
			err = requestFailed(resp)
		}
		errc <- err
	}()
	qw := pquads.NewWriter(pw, &pquads.Options{
		Full:   false,
		Strict: false,
	})
	qw.SetCloser(&funcCloser{f: func() error {
		pw.Close()
		return <-errc
	}})
	return qw, nil
}

func (c *Client) postJSON(path string, form url.Values, out interface{}) error {
	resp, err := c.cli.PostForm(c.url(path, nil), form)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return requestFailed(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Rename replaces the resource from with the IRI to in every statement.
// Both are given in N-Quads notation or as bare IRIs.
func (c *Client) Rename(from, to string) (quad.IRI, error) {
	var out struct {
		IRI string `json:"iri"`
	}
	err := c.postJSON("/api/v2/rename", url.Values{"from": {from}, "to": {to}}, &out)
	if err != nil {
		return "", err
	}
	return quad.IRI(out.IRI), nil
}

// Prune removes every statement matching the given terms. Empty terms match anything.
func (c *Client) Prune(sub, pred, obj string) (int, error) {
	form := url.Values{}
	for k, v := range map[string]string{"sub": sub, "pred": pred, "obj": obj} {
		if v != "" {
			form.Set(k, v)
		}
	}
	var out struct {
		Count int `json:"count"`
	}
	if err := c.postJSON("/api/v2/prune", form, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// Size returns the number of statements in the store.
func (c *Client) Size() (int, error) {
	resp, err := c.cli.Get(c.url("/api/v2/size", nil))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, requestFailed(resp)
	}
	var out struct {
		Size int `json:"size"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, err
	}
	return out.Size, nil
}
